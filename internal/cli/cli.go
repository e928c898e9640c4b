package cli

import (
	"fmt"

	"github.com/primespiral/spiral/constant"
	"github.com/primespiral/spiral/core"
	"github.com/primespiral/spiral/internal/config"
	"github.com/primespiral/spiral/internal/display"
	"github.com/primespiral/spiral/internal/logger"
	"github.com/primespiral/spiral/model"
	"github.com/primespiral/spiral/store"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// preferencesName is the file name, without extension, of the saved viewer
// state inside store.StateDir.
const preferencesName = "preferences"

// runApp starts the GUI. Tests replace it to stay headless.
var runApp = func(cfg *model.Config) error {
	prefs, err := store.NewFileStore[store.Preferences](store.StateDir(), preferencesName)
	if err != nil {
		return err
	}
	logrus.WithField("path", prefs.Path()).Debug("using preferences file")

	app, err := core.NewApp(cfg, prefs, display.Primary)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}
	return app.Run()
}

func InitCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          constant.ProjectName,
		Short:        "spiral draws an animated prime number spiral",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			initConfig, _ := cmd.Flags().GetBool("init-config")
			if initConfig {
				configPath, err := config.InitConfigFile()
				if err != nil {
					return model.NewExitError(model.ConfigError, fmt.Errorf("failed to initialize config: %w", err))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Config file created at: %s\n", configPath)
				return nil
			}

			cfg, err := config.InitConfig(cmd)
			if err != nil {
				return model.NewExitError(model.ConfigError, fmt.Errorf("failed to initialize config: %w", err))
			}
			if err := logger.SetLevel(cfg.LogLevel); err != nil {
				return model.NewExitError(model.ConfigError, fmt.Errorf("invalid log level: %w", err))
			}
			return runApp(cfg)
		},
	}

	config.BindFlags(rootCmd)
	rootCmd.AddCommand(newScreenCmd(display.Primary))
	return rootCmd
}
