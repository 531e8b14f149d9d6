package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	kongyaml "github.com/alecthomas/kong-yaml"

	"github.com/lumos-lang/lumos/internal/project"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("lumos"),
		kong.Description("Type-safe schema compiler for Solana development"),
		kong.UsageOnError(),
		// lumos.yaml supplies defaults; flags override config values.
		kong.Configuration(kongyaml.Loader, project.ConfigFile),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx.Bind(logger)
	ctx.FatalIfErrorf(ctx.Run(logger))
}

// CLI is the top-level command tree.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging."`

	Generate GenerateCmd `cmd:"" help:"Generate Rust and TypeScript sources from a schema."`
	Validate ValidateCmd `cmd:"" help:"Validate a schema without writing any files."`
	Check    CheckCmd    `cmd:"" help:"Verify that generated files are up to date."`
	Init     InitCmd     `cmd:"" help:"Scaffold a new lumos project."`
	Size     SizeCmd     `cmd:"" help:"Report Borsh-encoded sizes of schema types."`
}
