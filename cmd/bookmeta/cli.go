package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/bookmeta"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Provider bookmeta.Provider
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Query        []string      `arg:"" help:"Free-text book query"`
	GenericCover string        `name:"generic-cover" env:"BOOKMETA_GENERIC_COVER" help:"Cover URL used for books without one"`
	Locale       string        `default:"en" help:"Locale hint passed to the provider"`
	Timeout      time.Duration `default:"10s" env:"BOOKMETA_TIMEOUT" help:"HTTP request timeout"`
	Concurrency  int           `short:"c" default:"5" help:"Concurrent item page fetches"`
	UserAgent    string        `name:"user-agent" help:"User-Agent header for requests"`
	Markdown     bool          `help:"Convert HTML descriptions to Markdown"`
	JSON         bool          `help:"Print records as JSON"`
	Verbose      bool          `short:"v" help:"Log requests and dropped items to stderr"`
}
