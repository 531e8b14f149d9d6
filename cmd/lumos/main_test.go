package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumos-lang/lumos/internal/project"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSchema(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "schema.lumos")
	src := `
#[solana]
#[account]
struct PlayerAccount {
    wallet: PublicKey,
    level: u8,
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestValidateOutputPath(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, validateOutputPath(dir))
	assert.Error(t, validateOutputPath(filepath.Join(dir, "missing")))
	assert.Error(t, validateOutputPath("../escape"))

	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))
	assert.Error(t, validateOutputPath(file))
}

func TestGenerateWritesFiles(t *testing.T) {
	dir := t.TempDir()
	schema := writeSchema(t, dir)

	cmd := &GenerateCmd{
		Schema:     schema,
		Output:     dir,
		Rust:       "generated.rs",
		TypeScript: "generated.ts",
		Descriptor: "generated.schema.json",
	}
	require.NoError(t, cmd.Run(discardLogger()))

	rust, err := os.ReadFile(filepath.Join(dir, "generated.rs"))
	require.NoError(t, err)
	assert.Contains(t, string(rust), "pub struct PlayerAccount {")

	ts, err := os.ReadFile(filepath.Join(dir, "generated.ts"))
	require.NoError(t, err)
	assert.Contains(t, string(ts), "PlayerAccountSchema")

	desc, err := os.ReadFile(filepath.Join(dir, "generated.schema.json"))
	require.NoError(t, err)
	assert.Contains(t, string(desc), `"PlayerAccount"`)
}

func TestGenerateDryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()
	schema := writeSchema(t, dir)

	cmd := &GenerateCmd{
		Schema:     schema,
		Output:     dir,
		Rust:       "generated.rs",
		TypeScript: "generated.ts",
		DryRun:     true,
	}
	require.NoError(t, cmd.Run(discardLogger()))

	_, err := os.Stat(filepath.Join(dir, "generated.rs"))
	assert.True(t, os.IsNotExist(err))
}

func TestGenerateBackupKeepsOldContent(t *testing.T) {
	dir := t.TempDir()
	schema := writeSchema(t, dir)
	rustPath := filepath.Join(dir, "generated.rs")
	require.NoError(t, os.WriteFile(rustPath, []byte("stale"), 0o644))

	cmd := &GenerateCmd{
		Schema:     schema,
		Output:     dir,
		Rust:       "generated.rs",
		TypeScript: "generated.ts",
		Backup:     true,
	}
	require.NoError(t, cmd.Run(discardLogger()))

	bak, err := os.ReadFile(rustPath + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "stale", string(bak))
}

func TestGenerateRejectsBadSchema(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.lumos")
	require.NoError(t, os.WriteFile(schema, []byte("struct Player { pet: Ghost }"), 0o644))

	cmd := &GenerateCmd{Schema: schema, Output: dir, Rust: "g.rs", TypeScript: "g.ts"}
	assert.Error(t, cmd.Run(discardLogger()))
}

func TestCheckDetectsStaleFiles(t *testing.T) {
	dir := t.TempDir()
	schema := writeSchema(t, dir)

	gen := &GenerateCmd{
		Schema:     schema,
		Output:     dir,
		Rust:       "generated.rs",
		TypeScript: "generated.ts",
		Descriptor: "generated.schema.json",
	}
	require.NoError(t, gen.Run(discardLogger()))

	check := &CheckCmd{
		Schema:     schema,
		Output:     dir,
		Rust:       "generated.rs",
		TypeScript: "generated.ts",
		Descriptor: "generated.schema.json",
	}
	assert.NoError(t, check.Run(discardLogger()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "generated.rs"), []byte("tampered"), 0o644))
	assert.Error(t, check.Run(discardLogger()))
}

func TestInitScaffoldsProject(t *testing.T) {
	dir := t.TempDir()
	cmd := &InitCmd{Dir: dir}
	require.NoError(t, cmd.Run(discardLogger()))

	cfg, err := project.Load(filepath.Join(dir, project.ConfigFile))
	require.NoError(t, err)
	assert.Equal(t, "schema.lumos", cfg.Schema)

	_, err = os.Stat(filepath.Join(dir, "schema.lumos"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "README.md"))
	assert.NoError(t, err)

	// scaffolded schema must compile with the generate command
	gen := &GenerateCmd{
		Schema:     filepath.Join(dir, cfg.Schema),
		Output:     dir,
		Rust:       cfg.Output.Rust,
		TypeScript: cfg.Output.TypeScript,
		Descriptor: cfg.Output.Descriptor,
	}
	assert.NoError(t, gen.Run(discardLogger()))
}

func TestInitRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, (&InitCmd{Dir: dir}).Run(discardLogger()))
	assert.Error(t, (&InitCmd{Dir: dir}).Run(discardLogger()))
	assert.NoError(t, (&InitCmd{Dir: dir, Force: true}).Run(discardLogger()))
}

func TestValidateCmd(t *testing.T) {
	dir := t.TempDir()
	schema := writeSchema(t, dir)
	assert.NoError(t, (&ValidateCmd{Schema: schema}).Run(discardLogger()))

	bad := filepath.Join(dir, "bad.lumos")
	require.NoError(t, os.WriteFile(bad, []byte("struct {"), 0o644))
	assert.Error(t, (&ValidateCmd{Schema: bad}).Run(discardLogger()))
}

func TestSizeCmd(t *testing.T) {
	dir := t.TempDir()
	schema := writeSchema(t, dir)
	assert.NoError(t, (&SizeCmd{Schema: schema}).Run(discardLogger()))
	assert.NoError(t, (&SizeCmd{Schema: schema, JSON: true}).Run(discardLogger()))
}
