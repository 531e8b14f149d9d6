package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumos-lang/lumos/internal/project"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), project.ConfigFile)
	cfg := project.Config{
		Schema: "types.lumos",
		Output: project.Output{
			Directory:  "out",
			Rust:       "types.rs",
			TypeScript: "types.ts",
			Descriptor: "types.json",
		},
	}
	require.NoError(t, project.Save(path, cfg))

	loaded, err := project.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), project.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("schema: mine.lumos\n"), 0o644))

	cfg, err := project.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mine.lumos", cfg.Schema)
	assert.Equal(t, "generated.rs", cfg.Output.Rust)
	assert.Equal(t, "generated.ts", cfg.Output.TypeScript)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := project.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), project.ConfigFile)
	require.NoError(t, os.WriteFile(path, []byte("schema: [oops\n"), 0o644))
	_, err := project.Load(path)
	assert.Error(t, err)
}
