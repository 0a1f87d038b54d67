package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/uedocset/uedocset"
	"github.com/uedocset/uedocset/docset"
	"github.com/uedocset/uedocset/etree"
	"github.com/uedocset/uedocset/fs"
	uegoquery "github.com/uedocset/uedocset/goquery"
	ueslog "github.com/uedocset/uedocset/slog"
	"github.com/uedocset/uedocset/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("uedocset"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'uedocset --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Generate.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	processors, err := buildProcessors(deps.Logger)
	if err != nil {
		return err
	}

	deps.Generator = &docset.Generator{
		Archive:    fs.NewExtractor(),
		Processors: processors,
		Indexer:    sqlite.NewEntryService(),
		Manifests:  etree.NewManifestWriter(),
		Workers:    cli.Generate.Workers,
		Logger:     deps.Logger,
	}

	return kongCtx.Run(deps)
}

// buildProcessors wires a logged page processor for every supported flavor.
func buildProcessors(logger *slog.Logger) (map[uedocset.Flavor]uedocset.PageProcessor, error) {
	processors := make(map[uedocset.Flavor]uedocset.PageProcessor)
	for _, flavor := range []uedocset.Flavor{uedocset.FlavorCPP, uedocset.FlavorBlueprint} {
		p, err := uegoquery.NewProcessor(flavor)
		if err != nil {
			return nil, err
		}
		processors[flavor] = ueslog.NewLoggingProcessor(p, logger)
	}
	return processors, nil
}
