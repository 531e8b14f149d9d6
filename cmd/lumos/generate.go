package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lumos-lang/lumos"
	"github.com/lumos-lang/lumos/internal/diffutil"
)

// GenerateCmd compiles one schema file and writes the generated sources.
type GenerateCmd struct {
	Schema     string `arg:"" help:"Schema file to compile." type:"existingfile"`
	Output     string `short:"o" default:"." help:"Output directory for generated files."`
	Rust       string `default:"generated.rs" help:"Rust output file name."`
	TypeScript string `name:"typescript" default:"generated.ts" help:"TypeScript output file name."`
	Descriptor string `default:"generated.schema.json" help:"Wire descriptor file name; empty disables it."`

	DryRun bool `help:"Print what would be written without writing."`
	Diff   bool `help:"Show a diff against existing generated files before writing."`
	Backup bool `short:"b" help:"Keep a .bak copy of overwritten files."`

	Watch    bool          `short:"w" help:"Re-generate whenever the schema file changes."`
	Interval time.Duration `default:"500ms" help:"Polling interval for --watch."`
}

func (c *GenerateCmd) Run(logger *slog.Logger) error {
	if err := validateOutputPath(c.Output); err != nil {
		return err
	}
	if !c.Watch {
		return c.generateOnce(logger)
	}

	logger.Info("watching for changes", "schema", c.Schema, "interval", c.Interval)
	if err := c.generateOnce(logger); err != nil {
		logger.Error("generate failed", "error", err)
	}

	lastMod := modTime(c.Schema)
	ticker := time.NewTicker(c.Interval)
	defer ticker.Stop()
	for range ticker.C {
		mod := modTime(c.Schema)
		if mod.Equal(lastMod) {
			continue
		}
		lastMod = mod
		logger.Info("change detected", "schema", c.Schema)
		if err := c.generateOnce(logger); err != nil {
			logger.Error("generate failed", "error", err)
		}
	}
	return nil
}

func (c *GenerateCmd) generateOnce(logger *slog.Logger) error {
	source, err := os.ReadFile(c.Schema)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}

	out, err := lumos.Compile(string(source))
	if err != nil {
		return err
	}
	for _, w := range out.Warnings {
		logger.Warn("schema warning", "path", w.Path, "detail", w.Message)
	}
	if len(out.Model.Definitions) == 0 {
		logger.Warn("no type definitions found in schema", "schema", c.Schema)
		return nil
	}

	if err := c.writeFile(logger, c.Rust, []byte(out.Rust)); err != nil {
		return err
	}
	if err := c.writeFile(logger, c.TypeScript, []byte(out.TypeScript)); err != nil {
		return err
	}
	if c.Descriptor != "" {
		data, err := out.Descriptor.JSON()
		if err != nil {
			return err
		}
		if err := c.writeFile(logger, c.Descriptor, append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// writeFile writes one generated file, honoring --dry-run, --diff and
// --backup. Unchanged files are left untouched.
func (c *GenerateCmd) writeFile(logger *slog.Logger, name string, content []byte) error {
	path := filepath.Join(c.Output, name)
	existing, readErr := os.ReadFile(path)
	if readErr == nil && string(existing) == string(content) {
		logger.Debug("up to date", "file", path)
		return nil
	}

	if c.Diff && readErr == nil {
		fmt.Printf("--- %s\n", path)
		for _, line := range diffutil.Changed(diffutil.Lines(string(existing), string(content))) {
			fmt.Println(line)
		}
	}
	if c.DryRun {
		logger.Info("would write", "file", path, "bytes", len(content))
		return nil
	}
	if c.Backup && readErr == nil {
		if err := os.WriteFile(path+".bak", existing, 0o644); err != nil {
			return fmt.Errorf("writing backup: %w", err)
		}
	}
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Info("wrote", "file", path, "bytes", len(content))
	return nil
}

func modTime(path string) time.Time {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}
	}
	return info.ModTime()
}
