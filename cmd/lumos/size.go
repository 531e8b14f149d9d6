package main

import (
	"fmt"
	"log/slog"
	"os"

	gojson "github.com/goccy/go-json"

	"github.com/lumos-lang/lumos"
	"github.com/lumos-lang/lumos/sizecalc"
)

// SizeCmd reports the Borsh-encoded size of every definition in a schema.
type SizeCmd struct {
	Schema string `arg:"" help:"Schema file to analyze." type:"existingfile"`
	JSON   bool   `help:"Emit the report as JSON."`
}

func (c *SizeCmd) Run(logger *slog.Logger) error {
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

	sizes := sizecalc.New(model).CalculateAll()
	if c.JSON {
		return printJSON(sizes)
	}
	printReport(sizes)
	return nil
}

func printJSON(sizes []sizecalc.DefinitionSize) error {
	type fieldReport struct {
		Name        string `json:"name"`
		Bytes       int    `json:"bytes"`
		Variable    bool   `json:"variable,omitempty"`
		Description string `json:"description,omitempty"`
	}
	type defReport struct {
		Name      string        `json:"name"`
		Bytes     int           `json:"bytes"`
		Variable  bool          `json:"variable,omitempty"`
		IsAccount bool          `json:"isAccount,omitempty"`
		RentSOL   float64       `json:"rentSol,omitempty"`
		Fields    []fieldReport `json:"fields"`
		Warnings  []string      `json:"warnings,omitempty"`
	}

	report := make([]defReport, 0, len(sizes))
	for _, s := range sizes {
		d := defReport{
			Name:      s.Name,
			Bytes:     s.Total.Min,
			Variable:  s.Total.Variable,
			IsAccount: s.IsAccount,
			RentSOL:   s.RentSOL,
			Warnings:  s.Warnings,
		}
		for _, f := range s.Fields {
			d.Fields = append(d.Fields, fieldReport{
				Name:        f.Name,
				Bytes:       f.Size.Min,
				Variable:    f.Size.Variable,
				Description: f.Description,
			})
		}
		report = append(report, d)
	}

	data, err := gojson.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printReport(sizes []sizecalc.DefinitionSize) {
	for i, s := range sizes {
		if i > 0 {
			fmt.Println()
		}
		label := s.Name
		if s.IsAccount {
			label += " (account)"
		}
		fmt.Printf("%s: %s\n", label, s.Total)
		for _, f := range s.Fields {
			fmt.Printf("  %-24s %s\n", f.Name, f.Size)
		}
		if s.IsAccount {
			fmt.Printf("  rent-exempt estimate: %.6f SOL\n", s.RentSOL)
		}
		for _, w := range s.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
	}
}
