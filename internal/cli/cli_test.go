package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/primespiral/spiral/internal/display"
	"github.com/primespiral/spiral/internal/winsize"
	"github.com/primespiral/spiral/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, ".local", "state"))
	return home
}

func captureRun(t *testing.T) *[]*model.Config {
	t.Helper()
	var got []*model.Config
	orig := runApp
	runApp = func(cfg *model.Config) error {
		got = append(got, cfg)
		return nil
	}
	t.Cleanup(func() { runApp = orig })
	return &got
}

func TestInitCLI(t *testing.T) {
	cmd := InitCLI()

	require.NotNil(t, cmd)
	assert.Equal(t, "spiral", cmd.Use)
	assert.NotNil(t, cmd.RunE)
	for _, name := range []string{"init-config", "title", "width", "height", "fullscreen", "max-n", "spiral-coeff"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}

	screen, _, err := cmd.Find([]string{"screen"})
	require.NoError(t, err)
	assert.Equal(t, "screen", screen.Use)
}

func TestRootPassesConfigToApp(t *testing.T) {
	withHome(t)
	got := captureRun(t)

	cmd := InitCLI()
	cmd.SetArgs([]string{"--title", "Primes", "--max-n", "500", "--width", "1000"})
	require.NoError(t, cmd.Execute())

	require.Len(t, *got, 1)
	cfg := (*got)[0]
	assert.Equal(t, "Primes", cfg.Title)
	assert.Equal(t, 500, cfg.MaxN)
	assert.Equal(t, float32(1000), cfg.Width)
	assert.Equal(t, float32(900), cfg.Height)
}

func TestRootRejectsBadConfig(t *testing.T) {
	withHome(t)
	got := captureRun(t)

	for _, args := range [][]string{
		{"--log-level", "loud"},
		{"--width=-5"},
	} {
		cmd := InitCLI()
		cmd.SetArgs(args)
		cmd.SetErr(&bytes.Buffer{})
		err := cmd.Execute()
		require.Error(t, err, args)
		code, _ := model.ExitCodeFromError(err)
		assert.Equal(t, model.ConfigError, code, args)
	}
	assert.Empty(t, *got)
}

func TestRootInitConfig(t *testing.T) {
	home := withHome(t)
	got := captureRun(t)

	cmd := InitCLI()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--init-config"})
	require.NoError(t, cmd.Execute())

	path := filepath.Join(home, ".config", "spiral", "config.yaml")
	assert.Contains(t, out.String(), path)
	_, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Empty(t, *got, "init-config does not start the app")

	cmd = InitCLI()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--init-config"})
	err = cmd.Execute()
	code, _ := model.ExitCodeFromError(err)
	assert.Equal(t, model.ConfigError, code, "an existing file is not overwritten")
}

func TestScreenCommand(t *testing.T) {
	cmd := newScreenCmd(func() (display.Monitor, error) {
		return display.Monitor{Name: "DP-1", Size: winsize.Size{Width: 2560, Height: 1440}}, nil
	})
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	var report screenReport
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, screenReport{
		Monitor:   "DP-1",
		Width:     2560,
		Height:    1440,
		MaxWidth:  2360,
		MaxHeight: 1240,
	}, report)
}

func TestScreenCommandWithoutMonitor(t *testing.T) {
	probes := map[string]display.Prober{
		"no monitor": func() (display.Monitor, error) { return display.Monitor{}, display.ErrNoMonitor },
		"zero size":  func() (display.Monitor, error) { return display.Monitor{Name: "ghost"}, nil },
		"failure":    func() (display.Monitor, error) { return display.Monitor{}, errors.New("randr missing") },
	}
	for name, probe := range probes {
		t.Run(name, func(t *testing.T) {
			cmd := newScreenCmd(probe)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs([]string{})
			err := cmd.Execute()
			code, _ := model.ExitCodeFromError(err)
			assert.Equal(t, model.NoDisplay, code)
		})
	}
}

func TestWriteScreenReportTable(t *testing.T) {
	out := &bytes.Buffer{}
	r := newScreenReport(display.Monitor{Name: "eDP-1", Size: winsize.Size{Width: 900, Height: 700}})
	require.NoError(t, writeScreenReport(out, r, true))

	assert.Contains(t, out.String(), "MAX WINDOW")
	assert.Contains(t, out.String(), "900x700")
	assert.Contains(t, out.String(), "800x600")
	assert.False(t, isTerminal(out))
}
