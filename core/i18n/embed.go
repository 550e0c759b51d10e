// File: embed.go
// Title: Embedded Default Bundle
// Description: Ships the default message bundle inside the binary.
// Author: bastawesy
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package i18n

import (
	"embed"
	"io/fs"
)

//go:embed messages/*.toml
var embedded embed.FS

// DefaultFS returns the file system holding the embedded bundle files
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embedded, "messages")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewDefaultBundle builds a bundle from the embedded messages
func NewDefaultBundle() (*Bundle, error) {
	return NewBundle(Options{FS: DefaultFS()})
}
