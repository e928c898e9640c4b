package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/primespiral/spiral/model"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func newTestCommand(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "spiral", RunE: func(*cobra.Command, []string) error { return nil }}
	BindFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{"SPIRAL_TITLE", "SPIRAL_WIDTH", "SPIRAL_HEIGHT", "SPIRAL_LOG_LEVEL", "SPIRAL_MAX_N"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return home
}

func writeConfig(t *testing.T, home, content string) string {
	t.Helper()
	dir := filepath.Join(home, ".config", "spiral")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInitConfigDefaults(t *testing.T) {
	withHome(t)
	cfg, err := InitConfig(newTestCommand(t))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}

func TestInitConfigFromFile(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, `
title: "Ulam"
width: 1024
height: 768
log_level: debug
max_n: 20000
spiral_coeff: 3.5
`)

	cfg, err := InitConfig(newTestCommand(t))
	require.NoError(t, err)
	assert.Equal(t, "Ulam", cfg.Title)
	assert.Equal(t, float32(1024), cfg.Width)
	assert.Equal(t, float32(768), cfg.Height)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 20000, cfg.MaxN)
	assert.Equal(t, 3.5, cfg.SpiralCoeff)
	assert.False(t, cfg.Fullscreen)
}

func TestInitConfigPriority(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "title: from-file\nwidth: 1000\nheight: 700\n")
	t.Setenv("SPIRAL_WIDTH", "1100")

	cfg, err := InitConfig(newTestCommand(t, "--title", "from-flag"))
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Title)
	assert.Equal(t, float32(1100), cfg.Width)
	assert.Equal(t, float32(700), cfg.Height)
}

func TestInitConfigAcceptsCamelCase(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "maxN: 777\nlogLevel: warn\n")

	cfg, err := InitConfig(newTestCommand(t))
	require.NoError(t, err)
	assert.Equal(t, 777, cfg.MaxN)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestInitConfigRejectsUnknownKey(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "margin: 50\n")

	_, err := InitConfig(newTestCommand(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid key "margin"`)
}

func TestInitConfigRejectsMixedStyles(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "max_n: 10\nmaxN: 20\n")

	_, err := InitConfig(newTestCommand(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "use one naming style")
}

func TestInitConfigInvalidYAML(t *testing.T) {
	home := withHome(t)
	writeConfig(t, home, "title: [broken\n")

	_, err := InitConfig(newTestCommand(t))
	assert.Error(t, err)
}

func TestInitConfigRejectsBadSize(t *testing.T) {
	withHome(t)
	_, err := InitConfig(newTestCommand(t, "--width", "0"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "window size must be positive")
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "spiral")

	path, err := writeDefaultConfig(dir)
	require.NoError(t, err)
	assert.FileExists(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# spiral configuration file")

	var cfg model.Config
	require.NoError(t, yaml.Unmarshal(data, &cfg))
	assert.Equal(t, *model.DefaultConfig(), cfg)
	require.NoError(t, validateConfigFileKeys(path))

	_, err = writeDefaultConfig(dir)
	assert.Error(t, err, "existing file is not overwritten")
}

func TestKeyStyle(t *testing.T) {
	assert.Equal(t, "snake_case", keyStyle("max_n"))
	assert.Equal(t, "camelCase", keyStyle("maxN"))
	assert.Equal(t, "kebab-case", keyStyle("max-n"))
	assert.Equal(t, "unknown style", keyStyle(""))
}
