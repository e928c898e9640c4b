package model

import "github.com/primespiral/spiral/constant"

// Config holds all configuration for the application.
type Config struct {
	Title      string  `mapstructure:"title" yaml:"title"`
	Width      float32 `mapstructure:"width" yaml:"width"`
	Height     float32 `mapstructure:"height" yaml:"height"`
	Fullscreen bool    `mapstructure:"fullscreen" yaml:"fullscreen"`
	LogLevel   string  `mapstructure:"log_level" yaml:"log_level"`

	// spiral overrides, 0 keeps the stored preference.
	MaxN          int     `mapstructure:"max_n" yaml:"max_n"`
	Scale         float64 `mapstructure:"scale" yaml:"scale"`
	SpiralCoeff   float64 `mapstructure:"spiral_coeff" yaml:"spiral_coeff"`
	InstantRender bool    `mapstructure:"instant_render" yaml:"instant_render"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	return &Config{
		Title:         constant.MainWindowTitle,
		Width:         1280,
		Height:        900,
		Fullscreen:    false,
		LogLevel:      "info",
		MaxN:          0,
		Scale:         0,
		SpiralCoeff:   0,
		InstantRender: false,
	}
}
