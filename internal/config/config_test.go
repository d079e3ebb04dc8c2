package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/bearlint/pkg/lint"
)

// chdir changes into dir for the duration of the test. It stands in for
// testing.T.Chdir, which needs Go 1.24+.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(old))
	})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Empty(t, used, "no config file found")
	assert.Empty(t, cfg.ExtendSelect)
	assert.Empty(t, cfg.ExtendIgnore)
	assert.Zero(t, cfg.MaxComplexity)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `
extend_select: [B901]
extend_ignore: [B007]
max_complexity: 10
severities:
  B006: error
rules:
  B008:
    extend-immutable-calls: [fastapi.Depends]
`)

	cfg, used, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, []string{"B901"}, cfg.ExtendSelect)
	assert.Equal(t, []string{"B007"}, cfg.ExtendIgnore)
	assert.Equal(t, 10, cfg.MaxComplexity)
	assert.Equal(t, "error", cfg.Severities["B006"])
	require.Contains(t, cfg.Rules, "B008")
}

func TestLoadFileDiscovery(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, dir, ".bearlint.yaml", "max_complexity: 3\n")
	_, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, ".bearlint.yaml", used)

	// The canonical name wins over the hidden fallback.
	writeFile(t, dir, "bearlint.yaml", "max_complexity: 5\n")
	cfg, used, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "bearlint.yaml", used)
	assert.Equal(t, 5, cfg.MaxComplexity)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bearlint.yaml", "max_complexity: 10\n")
	t.Setenv("BEARLINT_MAX_COMPLEXITY", "7")

	cfg, _, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxComplexity)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BEARLINT_MAX_COMPLEXITY", "7")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-complexity", 0, "")
	flags.StringSlice("extend-select", nil, "")
	require.NoError(t, flags.Parse([]string{"--max-complexity=4", "--extend-select=B901,C901"}))

	cfg, _, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxComplexity)
	assert.Equal(t, []string{"B901", "C901"}, cfg.ExtendSelect)
}

func TestLoadUnchangedFlagsAreIgnored(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bearlint.yaml", "max_complexity: 10\n")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("max-complexity", 0, "")

	cfg, _, err := Load(path, flags)
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.MaxComplexity, "default flag value must not mask the file")
}

func TestToLint(t *testing.T) {
	cfg := &Config{
		ExtendSelect:  []string{"B901"},
		ExtendIgnore:  []string{"B007"},
		MaxComplexity: 10,
		Severities:    map[string]string{"B006": "error"},
		Rules: map[string]map[string]any{
			"B008": {"extend-immutable-calls": []any{"fastapi.Depends"}},
		},
	}

	lc, err := cfg.ToLint()
	require.NoError(t, err)
	assert.True(t, lc.ExtendSelect["B901"])
	assert.True(t, lc.ExtendIgnore["B007"])
	assert.Equal(t, 10, lc.MaxComplexity)
	assert.Equal(t, lint.SeverityError, lc.GetSeverity("B006", lint.SeverityWarning))
	assert.NotNil(t, lc.GetRuleOptions("B008"))
}

func TestToLintRejectsUnknownSeverity(t *testing.T) {
	cfg := &Config{Severities: map[string]string{"B006": "fatal"}}
	_, err := cfg.ToLint()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fatal")
}
