package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lumos-lang/lumos"
	"github.com/lumos-lang/lumos/ir"
)

// ValidateCmd parses and resolves a schema without generating anything.
type ValidateCmd struct {
	Schema string `arg:"" help:"Schema file to validate." type:"existingfile"`
}

func (c *ValidateCmd) Run(logger *slog.Logger) error {
	source, err := os.ReadFile(c.Schema)
	if err != nil {
		return fmt.Errorf("reading schema: %w", err)
	}

	file, err := lumos.Parse(string(source))
	if err != nil {
		return fmt.Errorf("%s: %w", c.Schema, err)
	}
	model, warnings, err := lumos.Resolve(file)
	if err != nil {
		return fmt.Errorf("%s: %w", c.Schema, err)
	}
	for _, w := range warnings {
		logger.Warn("schema warning", "path", w.Path, "detail", w.Message)
	}

	structs, enums := 0, 0
	for _, def := range model.Definitions {
		switch def.(type) {
		case *ir.StructDefinition:
			structs++
		case *ir.EnumDefinition:
			enums++
		}
	}
	logger.Info("schema is valid", "schema", c.Schema, "structs", structs, "enums", enums)
	return nil
}
