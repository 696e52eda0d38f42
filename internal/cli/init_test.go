package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/semlint/internal/cli"
	"github.com/yaklabco/semlint/pkg/config"
)

func TestInitCommand_WritesPack(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), ".semlint.yml")

	_, err := runCLI(t, "flavor: commonmark\n", "", "init", "--pack", "fragment", "--output", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# semlint configuration.")

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "fragment", cfg.Pack)
	assert.Empty(t, cfg.Rules)
}

func TestInitCommand_Full(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "semlint.yml")

	_, err := runCLI(t, "flavor: commonmark\n", "", "init", "--pack", "structure", "--full", "--output", out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Empty(t, cfg.Pack)
	require.Len(t, cfg.Rules, 13)

	deprecated := cfg.Rules["SEM011"]
	require.NotNil(t, deprecated.Enabled)
	assert.False(t, *deprecated.Enabled)

	header := cfg.Rules["SEM001"]
	require.NotNil(t, header.Enabled)
	require.NotNil(t, header.Severity)
	assert.True(t, *header.Enabled)
	assert.Equal(t, "error", *header.Severity)
}

func TestInitCommand_RefusesOverwrite(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), ".semlint.yml")
	require.NoError(t, os.WriteFile(out, []byte("pack: strict\n"), 0o644))

	_, err := runCLI(t, "flavor: commonmark\n", "", "init", "--output", out)
	require.ErrorIs(t, err, cli.ErrInvalidUsage)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "pack: strict\n", string(data))

	_, err = runCLI(t, "flavor: commonmark\n", "", "init", "--force", "--output", out)
	require.NoError(t, err)

	data, err = os.ReadFile(out)
	require.NoError(t, err)
	cfg, err := config.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Pack)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())
}

func TestInitCommand_ForceWithSameContentIsNoop(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), ".semlint.yml")

	_, err := runCLI(t, "flavor: commonmark\n", "", "init", "--output", out)
	require.NoError(t, err)
	require.NoError(t, os.Chmod(out, 0o600))

	stdout, err := runCLI(t, "flavor: commonmark\n", "", "init", "--force", "--output", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "already up to date")

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "unchanged file is not rewritten")
}

func TestInitCommand_UnknownPack(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), ".semlint.yml")

	_, err := runCLI(t, "flavor: commonmark\n", "", "init", "--pack", "relaxed", "--output", out)
	require.ErrorIs(t, err, cli.ErrInvalidUsage)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
