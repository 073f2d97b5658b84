package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/config"
)

var (
	configPath string
	logLevel   string
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "blackjack",
	Short: "Play blackjack against the dealer in your terminal",
	Long: `Blackjack is a single-player command-line game against a dealer, played
with one standard 52-card deck. Get closer to 21 than the dealer without going over.

Settings such as your name and the dealer's standing total live in
XDG_CONFIG_HOME/blackjack/config.toml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (default $XDG_CONFIG_HOME/blackjack/config.toml)")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error (overrides the config file)")

	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads the file named by --config, or the default config file
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}
		return config.LoadConfigFrom(configPath)
	}
	return config.LoadConfig()
}

// saveConfig writes back to wherever loadConfig read from
func saveConfig(cfg *config.Config) error {
	if configPath != "" {
		return config.SaveConfigTo(configPath, cfg)
	}
	return config.SaveConfig(cfg)
}

// activeConfigPath returns the config file commands operate on
func activeConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetConfigFilePath()
}

// newLogger logs to stderr at the --log-level flag or the configured level
func newLogger(cmd *cobra.Command, cfg *config.Config) (*log.Logger, error) {
	name := cfg.LogLevel
	if logLevel != "" {
		name = logLevel
	}

	level, err := log.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", name, err)
	}

	return log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Level:           level,
		Prefix:          "blackjack",
		ReportTimestamp: level == log.DebugLevel,
		TimeFormat:      "15:04:05",
	}), nil
}
