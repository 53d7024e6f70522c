package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// cliConfig selects the position to update, either by account addresses or
// by position mint and tick range.
type cliConfig struct {
	LogLevel string `mapstructure:"log_level"`

	// Fee payer of the unsigned transaction
	Payer string `mapstructure:"payer"`

	// Optional. A zero blockhash is used when unset.
	Blockhash string `mapstructure:"blockhash"`

	Whirlpool      string `mapstructure:"whirlpool"`
	Position       string `mapstructure:"position"`
	TickArrayLower string `mapstructure:"tick_array_lower"`
	TickArrayUpper string `mapstructure:"tick_array_upper"`

	PositionMint   string `mapstructure:"position_mint"`
	TickLowerIndex int32  `mapstructure:"tick_lower_index"`
	TickUpperIndex int32  `mapstructure:"tick_upper_index"`
	TickSpacing    uint16 `mapstructure:"tick_spacing"`
}

var defaultConfig = cliConfig{
	LogLevel: "info",
}

var envBindings = map[string]string{
	"log_level":        "LOG_LEVEL",
	"payer":            "PAYER",
	"blockhash":        "BLOCKHASH",
	"whirlpool":        "WHIRLPOOL",
	"position":         "POSITION",
	"tick_array_lower": "TICK_ARRAY_LOWER",
	"tick_array_upper": "TICK_ARRAY_UPPER",
	"position_mint":    "POSITION_MINT",
	"tick_lower_index": "TICK_LOWER_INDEX",
	"tick_upper_index": "TICK_UPPER_INDEX",
	"tick_spacing":     "TICK_SPACING",
}

// loadConfig reads the YAML file at configPath, if it exists, with
// environment variables taking precedence.
func loadConfig(configPath string) (cliConfig, error) {
	v := viper.New()
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	// An explicitly set config file that doesn't exist isn't reported as a
	// viper.ConfigFileNotFoundError, so it's checked here.
	if _, err := os.Stat(configPath); err == nil {
		v.SetConfigFile(configPath)

		if err := v.ReadInConfig(); err != nil {
			return cliConfig{}, errors.Wrapf(err, "failed to read config %s", configPath)
		}
	} else if !os.IsNotExist(err) {
		return cliConfig{}, errors.Wrap(err, "failed to check if config exists")
	}

	config := defaultConfig
	if err := v.Unmarshal(&config); err != nil {
		return cliConfig{}, errors.Wrap(err, "failed to unmarshal config")
	}

	return config, nil
}
