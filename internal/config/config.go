package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/primespiral/spiral/constant"
	"github.com/primespiral/spiral/model"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v2"
)

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"title":          "title",
	"width":          "width",
	"height":         "height",
	"fullscreen":     "fullscreen",
	"log-level":      "log_level",
	"max-n":          "max_n",
	"scale":          "scale",
	"spiral-coeff":   "spiral_coeff",
	"instant-render": "instant_render",
}

// getConfigPaths returns the config directory paths in priority order.
// prefers ~/.config over the platform config dir.
func getConfigPaths() []string {
	var paths []string
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", constant.ProjectName))
		paths = append(paths, filepath.Join(homeDir, "."+constant.ProjectName))
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constant.ProjectName))
	}
	return paths
}

// getPreferredConfigDir returns the preferred config directory for writing.
func getPreferredConfigDir() (string, error) {
	if homeDir, err := os.UserHomeDir(); err == nil {
		return filepath.Join(homeDir, ".config", constant.ProjectName), nil
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(userConfigDir, constant.ProjectName), nil
	}
	return "", fmt.Errorf("unable to determine config directory")
}

// BindFlags registers the config flags on cmd.
func BindFlags(cmd *cobra.Command) {
	defaults := model.DefaultConfig()

	cmd.PersistentFlags().StringP("title", "t", defaults.Title, "Title of the spiral window")
	cmd.PersistentFlags().Float32("width", defaults.Width, "Initial window width")
	cmd.PersistentFlags().Float32("height", defaults.Height, "Initial window height")
	cmd.PersistentFlags().BoolP("fullscreen", "f", defaults.Fullscreen, "Start in fullscreen")
	cmd.PersistentFlags().String("log-level", defaults.LogLevel, "Log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().Int("max-n", defaults.MaxN, "Largest integer placed on the spiral (0 keeps the saved value)")
	cmd.PersistentFlags().Float64("scale", defaults.Scale, "Spiral scale (0 keeps the saved value)")
	cmd.PersistentFlags().Float64("spiral-coeff", defaults.SpiralCoeff, "Spiral coefficient (0 keeps the saved value)")
	cmd.PersistentFlags().Bool("instant-render", defaults.InstantRender, "Draw every point each frame")
	cmd.PersistentFlags().Bool("init-config", false, "Generate and save default config file")
}

// SetViperDefaults sets default values in viper configuration.
func SetViperDefaults(v *viper.Viper) {
	defaults := model.DefaultConfig()
	v.SetDefault("title", defaults.Title)
	v.SetDefault("width", defaults.Width)
	v.SetDefault("height", defaults.Height)
	v.SetDefault("fullscreen", defaults.Fullscreen)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("max_n", defaults.MaxN)
	v.SetDefault("scale", defaults.Scale)
	v.SetDefault("spiral_coeff", defaults.SpiralCoeff)
	v.SetDefault("instant_render", defaults.InstantRender)
}

// SetViperEnvSettings configures viper environment variable settings.
func SetViperEnvSettings(v *viper.Viper) {
	v.SetEnvPrefix(strings.ToUpper(constant.ProjectName))
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

// InitConfig loads configuration with the following priority:
// 1. CLI flags (highest priority)
// 2. Environment variables
// 3. Config file
// 4. Defaults
func InitConfig(cmd *cobra.Command) (*model.Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, path := range getConfigPaths() {
		v.AddConfigPath(path)
	}

	SetViperEnvSettings(v)
	SetViperDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// no config file, defaults + env vars + flags
	}
	if err := validateConfigFileKeys(v.ConfigFileUsed()); err != nil {
		return nil, err
	}
	// aliases move already-read camelCase values onto their canonical keys.
	registerConfigKeyAliases(v)

	if err := bindFlags(v, cmd.Flags()); err != nil {
		return nil, fmt.Errorf("error binding flags: %w", err)
	}

	var config model.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := validate(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func validate(cfg *model.Config) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.MaxN < 0 {
		return fmt.Errorf("max_n must not be negative, got %d", cfg.MaxN)
	}
	if cfg.Scale < 0 || cfg.SpiralCoeff < 0 {
		return fmt.Errorf("scale and spiral_coeff must not be negative")
	}
	return nil
}

const configHeader = `# spiral configuration file
# Generated automatically - customize as needed
#
# width/height: initial window size; it is shrunk to fit the primary screen
# max_n, scale, spiral_coeff: 0 keeps the value saved from the last session
# log_level: trace, debug, info, warn, error
#
`

// InitConfigFile writes a default config file and returns its path.
func InitConfigFile() (string, error) {
	configDir, err := getPreferredConfigDir()
	if err != nil {
		return "", err
	}
	return writeDefaultConfig(configDir)
}

func writeDefaultConfig(configDir string) (string, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	yamlData, err := yaml.Marshal(model.DefaultConfig())
	if err != nil {
		return "", fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(configHeader+string(yamlData)), 0o644); err != nil {
		return "", fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}
	return configPath, nil
}
