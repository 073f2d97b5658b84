package cmd

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/arcanaland/blackjack/internal/console"
	"github.com/arcanaland/blackjack/internal/game"
	"github.com/arcanaland/blackjack/internal/validator"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game of blackjack against the dealer",
	Long: `Play deals you and the dealer two cards each. One of the dealer's cards stays
face down until your turn is over.

On your turn enter 1 to hit (take another card) or 2 to stand. Hitting exactly 21
wins straight away and going over 21 loses. Once you stand, the dealer draws until
reaching 17 and the higher total wins.

Examples:
  blackjack play
  blackjack play --name Alice
  blackjack play --seed 42 --color never`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		// Flags override the config file
		if cmd.Flags().Changed("name") {
			cfg.PlayerName, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("seed") {
			cfg.Seed, _ = cmd.Flags().GetInt64("seed")
		}
		if cmd.Flags().Changed("color") {
			cfg.Color, _ = cmd.Flags().GetString("color")
		}

		if results := validator.ValidateConfig(cfg); !results.Valid() {
			return fmt.Errorf("invalid settings: %s", strings.Join(results.Errors, "; "))
		}

		logger, err := newLogger(cmd, cfg)
		if err != nil {
			return err
		}
		logger = logger.With("session", uuid.NewString())

		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		logger.Debug("Starting game", "seed", seed, "dealer_stands_on", cfg.DealerStandsOn)

		con := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), cfg.Color)
		con.Banner()

		g := game.New(con,
			game.WithRand(rand.New(rand.NewSource(seed))),
			game.WithPlayerName(cfg.PlayerName),
			game.WithStandOn(cfg.DealerStandsOn),
			game.WithLogger(logger),
		)

		outcome, err := g.Run()
		if err != nil {
			return fmt.Errorf("game aborted: %w", err)
		}

		con.Announce(outcome)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(playCmd)

	playCmd.Flags().StringP("name", "n", "", "Your name at the table (skips the name prompt)")
	playCmd.Flags().Int64("seed", 0, "Shuffle seed for a reproducible deck (0 picks one at random)")
	playCmd.Flags().String("color", "", "Color output: auto, always or never")
}
