package main

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pantryworks/recipe-converter/internal/config"
)

//go:embed version.txt
var version string

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:     "hookrunner",
	Short:   "Runs the git hooks declared in a repository's hook document",
	Version: strings.TrimSpace(version),

	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configFile, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		logLevel, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}

		logDisableTimestamps, err := cmd.Flags().GetBool("log-disable-timestamps")
		if err != nil {
			return err
		}

		cfg, err = config.NewFromConfigFile(configFile)
		if err != nil {
			return err
		}

		cfg.Log.Configure(logLevel, logDisableTimestamps)
		return nil
	},
}

func init() {
	// We configure the default logger early so any logging prior to config
	// loading is still styled.
	config.SetLoggerDefaults()

	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigPath(), "path to the config file")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().Bool("log-disable-timestamps", false, "disable timestamps in log output")
	rootCmd.PersistentFlags().String("hooks-file", "", "path to the hook document")
}

// hooksFile prefers the --hooks-file flag over the configured path.
func hooksFile(cmd *cobra.Command) string {
	if path, err := cmd.Flags().GetString("hooks-file"); err == nil && path != "" {
		return path
	}
	return cfg.Hooks.File
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal("failed to execute", "error", err)
		return err
	}
	return nil
}
