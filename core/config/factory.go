// File: factory.go
// Title: Component Construction
// Description: Builds the logger, the message bundle and the HTTP client
//              described by the configuration.
// Author: bastawesy
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.2.0: Bundle watching and HTTP client construction

package config

import (
	"context"
	"io"
	"os"
	"strings"

	ruerror "github.com/bastawesy/reactorutils/core/error"
	"github.com/bastawesy/reactorutils/core/i18n"
	rulog "github.com/bastawesy/reactorutils/core/log"
	"github.com/bastawesy/reactorutils/utils/httpx"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// NewLogger creates the configured logger. The returned closer releases a
// log file and must be called on shutdown; it is a no-op for std streams.
func (c LogConfig) NewLogger() (*rulog.Logger, io.Closer, error) {
	var (
		output io.Writer
		closer io.Closer = nopCloser{}
	)

	switch strings.ToLower(strings.TrimSpace(c.Output)) {
	case "", "stderr":
		output = os.Stderr
	case "stdout":
		output = os.Stdout
	default:
		f, err := os.OpenFile(c.Output, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, ruerror.Wrap(err, "failed to open log file").
				WithCode(ruerror.CodeConfigError).
				WithOperation("config.NewLogger").
				WithDetail("output", c.Output)
		}
		output, closer = f, f
	}

	logger, err := rulog.FromStrings(c.Level, c.Format, output)
	if err != nil {
		closer.Close()
		return nil, nil, ruerror.Wrap(err, "invalid log settings").
			WithCode(ruerror.CodeInvalidConfig).
			WithOperation("config.NewLogger")
	}
	return logger, closer, nil
}

// NewBundle loads the configured message bundle, falling back to the
// embedded messages when no directory is set. With Watch set the bundle
// reloads on file changes until ctx is done.
func (c I18nConfig) NewBundle(ctx context.Context, logger *rulog.Logger) (*i18n.Bundle, error) {
	format, err := i18n.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}

	options := i18n.Options{
		Dir:           c.Dir,
		BaseName:      c.BaseName,
		DefaultLocale: c.DefaultLocale,
		Format:        format,
		Logger:        logger,
	}
	if strings.TrimSpace(c.Dir) == "" {
		options.FS = i18n.DefaultFS()
	}

	bundle, err := i18n.NewBundle(options)
	if err != nil {
		return nil, err
	}
	if c.Watch {
		if err := bundle.Watch(ctx); err != nil {
			return nil, err
		}
	}
	return bundle, nil
}

// ClientOptions turns the HTTP section into options for httpx.NewClient
func (c HTTPConfig) ClientOptions(logger *rulog.Logger) httpx.ClientOptions {
	return httpx.ClientOptions{
		Timeout:         c.Timeout.Duration,
		ContentType:     c.ContentType,
		RequestIDHeader: c.RequestIDHeader,
		Logger:          logger,
	}
}

// NewClient creates the configured HTTP client
func (c HTTPConfig) NewClient(logger *rulog.Logger) *httpx.Client {
	return httpx.NewClient(c.ClientOptions(logger))
}
