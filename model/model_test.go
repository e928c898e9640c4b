package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "Prime Spiral", cfg.Title)
	assert.Equal(t, float32(1280), cfg.Width)
	assert.Equal(t, float32(900), cfg.Height)
	assert.False(t, cfg.Fullscreen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Zero(t, cfg.MaxN)
	assert.Zero(t, cfg.Scale)
	assert.Zero(t, cfg.SpiralCoeff)
	assert.False(t, cfg.InstantRender)
}

func TestDefaultConfigIsFresh(t *testing.T) {
	a := DefaultConfig()
	a.Title = "changed"
	assert.Equal(t, "Prime Spiral", DefaultConfig().Title)
}

func TestExitCodeString(t *testing.T) {
	assert.Equal(t, "Exit code 2", ConfigError.String())
	assert.Equal(t, "Exit code 2", ConfigError.Error())
}
