package main

import (
	"os"

	"github.com/bastawesy/reactorutils/cmd/reactorutils/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
