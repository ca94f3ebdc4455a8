package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

var ErrBlankSymbol = errors.New("symbol must not be blank")

// validate - shared instance, it caches struct metadata between calls.
var validate = validator.New(validator.WithRequiredStructEnabled())

type Config struct {
	LogLevel string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Pacing   Pacing  `yaml:"pacing"`
	Symbols  Symbols `yaml:"symbols"`
}

// Pacing - UX delays, they never change the game state.
// cleanenv treats zero as unset, so zero values only stick when set through env.
type Pacing struct {
	InvalidMoveDelay   time.Duration `yaml:"invalid-move-delay" env:"INVALID_MOVE_DELAY" env-default:"2s" validate:"gte=0s"`
	ThinkingFrames     int           `yaml:"thinking-frames" env:"THINKING_FRAMES" env-default:"4" validate:"gte=0,lte=10"`
	ThinkingFrameDelay time.Duration `yaml:"thinking-frame-delay" env:"THINKING_FRAME_DELAY" env-default:"500ms" validate:"gte=0s"`
}

type Symbols struct {
	Player   string `yaml:"player" env:"PLAYER_SYMBOL" env-default:"X" validate:"len=1,printascii,nefield=Computer"`
	Computer string `yaml:"computer" env:"COMPUTER_SYMBOL" env-default:"O" validate:"len=1,printascii"`
}

// Load - reads the yml file at path when it exists, then applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if _, statErr := os.Stat(path); statErr == nil {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}

	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err = config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// MustLoad - Load that panics on error.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Config) Validate() error {
	if err := validate.Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for _, symbol := range []string{that.Symbols.Player, that.Symbols.Computer} {
		if strings.TrimSpace(symbol) == "" {
			return fmt.Errorf("invalid config: %w", ErrBlankSymbol)
		}
	}

	return nil
}
