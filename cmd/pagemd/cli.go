package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemd"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Service pagemd.PageService
	Logger  *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config    string `help:"Path to a YAML config file" type:"path"`
	LogLevel  string `default:"info" enum:"debug,info,warn,error" help:"Log verbosity"`
	Extractor string `default:"readability" enum:"readability,trafilatura" help:"Content extraction engine"`
	UserAgent string `help:"Override the User-Agent header"`

	Fetch FetchCmd `cmd:"" help:"Fetch one or more URLs and print markdown"`
	Serve ServeCmd `cmd:"" help:"Serve fetch_url and fetch_urls over MCP stdio"`
}

// FetchCmd is the "fetch" subcommand.
type FetchCmd struct {
	URLs       []string      `arg:"" help:"URLs to fetch"`
	Metadata   bool          `short:"m" help:"Prepend extracted metadata as front matter"`
	NoSimplify bool          `help:"Convert the full document without content extraction"`
	Timeout    time.Duration `short:"t" default:"30s" help:"Fetch timeout per URL"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}
