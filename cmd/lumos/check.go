package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lumos-lang/lumos"
	"github.com/lumos-lang/lumos/internal/diffutil"
)

// CheckCmd regenerates in memory and compares against the files on disk.
// It exits non-zero when any generated file is missing or stale, which makes
// it suitable for CI.
type CheckCmd struct {
	Schema     string `arg:"" help:"Schema file to compile." type:"existingfile"`
	Output     string `short:"o" default:"." help:"Directory holding the generated files."`
	Rust       string `default:"generated.rs" help:"Rust output file name."`
	TypeScript string `name:"typescript" default:"generated.ts" help:"TypeScript output file name."`
	Descriptor string `default:"generated.schema.json" help:"Wire descriptor file name; empty disables it."`

	Diff bool `help:"Show what is stale."`
}

func (c *CheckCmd) Run(logger *slog.Logger) error {
	source, err := os.ReadFile(c.Schema)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}
	out, err := lumos.Compile(string(source))
	if err != nil {
		return err
	}

	want := map[string]string{
		c.Rust:       out.Rust,
		c.TypeScript: out.TypeScript,
	}
	if c.Descriptor != "" {
		data, err := out.Descriptor.JSON()
		if err != nil {
			return err
		}
		want[c.Descriptor] = string(data) + "\n"
	}

	stale := 0
	for _, name := range []string{c.Rust, c.TypeScript, c.Descriptor} {
		content, ok := want[name]
		if !ok {
			continue
		}
		path := filepath.Join(c.Output, name)
		existing, err := os.ReadFile(path)
		if err != nil {
			logger.Error("generated file missing", "file", path)
			stale++
			continue
		}
		if string(existing) == content {
			logger.Debug("up to date", "file", path)
			continue
		}
		logger.Error("generated file is stale", "file", path)
		stale++
		if c.Diff {
			fmt.Printf("--- %s\n", path)
			for _, line := range diffutil.Changed(diffutil.Lines(string(existing), content)) {
				fmt.Println(line)
			}
		}
	}

	if stale > 0 {
		return fmt.Errorf("%d generated file(s) out of date; run `lumos generate %s`", stale, c.Schema)
	}
	logger.Info("generated files are up to date", "schema", c.Schema)
	return nil
}
