package validator

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/arcanaland/blackjack/internal/config"
	"github.com/arcanaland/blackjack/internal/console"
)

// Dealer stand totals that still make a playable game
const (
	MinDealerStandsOn = 12
	MaxDealerStandsOn = 21
)

// MaxPlayerNameLength is the longest name shown without a warning
const MaxPlayerNameLength = 32

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Valid reports whether no errors were found
func (r ValidationResults) Valid() bool {
	return len(r.Errors) == 0
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults

	config *config.Config
	meta   toml.MetaData
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

// Validate decodes the config file and checks every setting. The error is
// only set when the file cannot be read or parsed at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decodeConfig(); err != nil {
		return v.Results, err
	}

	v.validateUnknownKeys()
	v.validateSettings(v.config)

	return v.Results, nil
}

// ValidateConfig checks an already loaded config
func ValidateConfig(cfg *config.Config) ValidationResults {
	v := &Validator{}
	v.validateSettings(cfg)
	return v.Results
}

func (v *Validator) decodeConfig() error {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", v.ConfigPath, err)
	}

	v.config = cfg
	v.meta = meta
	return nil
}

func (v *Validator) validateSettings(cfg *config.Config) {
	v.validateDealerStandsOn(cfg)
	v.validateColor(cfg)
	v.validateLogLevel(cfg)
	v.validatePlayerName(cfg)
}

// validateUnknownKeys warns about keys the game does not read
func (v *Validator) validateUnknownKeys() {
	for _, key := range v.meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key %q is ignored", key.String()))
	}
}

func (v *Validator) validateDealerStandsOn(cfg *config.Config) {
	if cfg.DealerStandsOn < MinDealerStandsOn || cfg.DealerStandsOn > MaxDealerStandsOn {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("dealer_stands_on must be between %d and %d, got %d",
				MinDealerStandsOn, MaxDealerStandsOn, cfg.DealerStandsOn))
	}
}

func (v *Validator) validateColor(cfg *config.Config) {
	if !slices.Contains(console.ColorModes, cfg.Color) {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("unsupported color: %q (supported: %s)", cfg.Color, strings.Join(console.ColorModes, ", ")))
	}
}

func (v *Validator) validateLogLevel(cfg *config.Config) {
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		v.Results.Errors = append(v.Results.Errors,
			fmt.Sprintf("invalid log_level %q: %v", cfg.LogLevel, err))
	}
}

func (v *Validator) validatePlayerName(cfg *config.Config) {
	if len(cfg.PlayerName) > MaxPlayerNameLength {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("player_name is longer than %d characters", MaxPlayerNameLength))
	}
	if cfg.PlayerName != "" && strings.TrimSpace(cfg.PlayerName) == "" {
		v.Results.Warnings = append(v.Results.Warnings,
			"player_name is blank, you will be asked for a name")
	}
}
