package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/uedocset/uedocset/docset"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Generator *docset.Generator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Generate GenerateCmd `cmd:"" help:"Generate a docset from a documentation archive"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Input   string `arg:"" type:"existingfile" help:"Documentation archive (.tgz)"`
	Output  string `arg:"" type:"path" help:"Output directory for the generated docset"`
	Workers int    `short:"w" default:"0" help:"Concurrent page workers (0 = number of CPUs)"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
}
