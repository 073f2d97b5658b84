package cmd

import (
	"fmt"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage blackjack settings",
	Long:  `Commands for creating, showing and changing the blackjack config file.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with default settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		// Loading the default path creates the file if it's missing
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		if err := saveConfig(cfg); err != nil {
			return err
		}

		fmt.Fprintln(out, "Config file initialized at:", activeConfigPath())
		return nil
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		name := cfg.PlayerName
		if name == "" {
			name = "(asked at the table)"
		}
		seed := fmt.Sprintf("%d", cfg.Seed)
		if cfg.Seed == 0 {
			seed = "random"
		}

		fmt.Fprintln(out, colorize.CyanString("File:             ")+colorize.HiWhiteString("%s", activeConfigPath()))
		fmt.Fprintln(out, colorize.CyanString("Player name:      ")+colorize.HiWhiteString("%s", name))
		fmt.Fprintln(out, colorize.CyanString("Dealer stands on: ")+colorize.HiWhiteString("%d", cfg.DealerStandsOn))
		fmt.Fprintln(out, colorize.CyanString("Color:            ")+colorize.HiWhiteString("%s", cfg.Color))
		fmt.Fprintln(out, colorize.CyanString("Log level:        ")+colorize.HiWhiteString("%s", cfg.LogLevel))
		fmt.Fprintln(out, colorize.CyanString("Seed:             ")+colorize.HiWhiteString("%s", seed))
		return nil
	},
}

// configSetNameCmd represents the config set-name command
var configSetNameCmd = &cobra.Command{
	Use:   "set-name [name]",
	Short: "Set the name used at the table instead of asking",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		cfg.PlayerName = name
		if err := saveConfig(cfg); err != nil {
			return fmt.Errorf("error setting player name: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Player name set to: %s\n", name)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetNameCmd)
}
