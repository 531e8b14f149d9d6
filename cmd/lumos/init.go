package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/lumos-lang/lumos/internal/project"
)

// InitCmd scaffolds a new project: an example schema, a lumos.yaml and a
// short README.
type InitCmd struct {
	Dir   string `arg:"" optional:"" default:"." help:"Directory to initialize."`
	Force bool   `short:"f" help:"Overwrite existing files."`
}

const exampleSchema = `// Example schema. Run ` + "`lumos generate schema.lumos`" + ` to compile it.

#[solana]
#[account]
struct PlayerAccount {
    wallet: PublicKey,
    username: String,
    level: u8,
    experience: u64,
    is_active: bool,
}

#[solana]
enum GameEvent {
    Join,
    Score(u64),
    Trade { item: String, price: u64 },
}
`

const readme = `# lumos project

- ` + "`schema.lumos`" + ` holds the type definitions.
- ` + "`lumos.yaml`" + ` configures output locations.

Run ` + "`lumos generate schema.lumos`" + ` to produce the Rust and TypeScript
sources plus the wire descriptor.
`

func (c *InitCmd) Run(logger *slog.Logger) error {
	if err := os.MkdirAll(c.Dir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", c.Dir, err)
	}

	cfg := project.Default()
	files := []struct {
		name    string
		content string
	}{
		{cfg.Schema, exampleSchema},
		{"README.md", readme},
	}
	for _, f := range files {
		path := filepath.Join(c.Dir, f.name)
		if _, err := os.Stat(path); err == nil && !c.Force {
			return fmt.Errorf("%s already exists; use --force to overwrite", path)
		}
		if err := os.WriteFile(path, []byte(f.content), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		logger.Info("created", "file", path)
	}

	cfgPath := filepath.Join(c.Dir, project.ConfigFile)
	if _, err := os.Stat(cfgPath); err == nil && !c.Force {
		return fmt.Errorf("%s already exists; use --force to overwrite", cfgPath)
	}
	if err := project.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing %s: %w", cfgPath, err)
	}
	logger.Info("created", "file", cfgPath)

	logger.Info("project initialized", "dir", c.Dir)
	return nil
}
