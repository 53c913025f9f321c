package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/chriserin/gwtgen/internal/config"
	"github.com/chriserin/gwtgen/internal/logger"
)

var (
	configPath  string
	verboseFlag bool
	logFileFlag string

	// cfg is loaded before any subcommand runs.
	cfg = config.Default()
)

var rootCmd = &cobra.Command{
	Use:          "gwtgen",
	Short:        "Generate given/when/then scenario test skeletons from feature files",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		level := cfg.Log.Level
		if verboseFlag {
			level = "debug"
		}
		logFile := cfg.Log.File
		if logFileFlag != "" {
			logFile = logFileFlag
		}
		return logger.Initialize(cmd.ErrOrStderr(), level, logFile)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./"+config.FileName+" when present)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log debug diagnostics to stderr")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log-file", "", "Also write diagnostics to this file")
}

// loadConfig reads an explicit config path, or the default file if one
// exists in the working directory.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path, false)
	}
	return config.Load(config.FileName, true)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
