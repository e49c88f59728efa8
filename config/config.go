// Package config loads the settings of the sav command from environment
// variables and an optional config file.
//
// Every key can be set in a ".savings" file (KEY=value lines) in the working
// directory, and overridden by a SAV_ prefixed environment variable:
// SAV_LEDGER_FILE, SAV_CURRENCY, SAV_JSON_PATH.
package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the name of the optional config file.
const FileName = ".savings"

// EnvPrefix is the prefix of the environment variables read.
const EnvPrefix = "SAV"

// Config stores the settings of the sav command.
type Config struct {
	LedgerFile string `mapstructure:"LEDGER_FILE"`
	Currency   string `mapstructure:"CURRENCY"`
	JSONPath   string `mapstructure:"JSON_PATH"`
}

// Load reads the configuration from the config file in 'dir', if any, and
// from the environment.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(FileName)
	v.SetConfigType("env")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("LEDGER_FILE", "accounts.csv")
	v.SetDefault("CURRENCY", "GBP")
	v.SetDefault("JSON_PATH", "$.accounts[*]")

	// Bind envs explicitly so that Unmarshal sees them.
	_ = v.BindEnv("LEDGER_FILE")
	_ = v.BindEnv("CURRENCY")
	_ = v.BindEnv("JSON_PATH")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("Warning: Error reading config file: %s", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	config.Currency = strings.ToUpper(strings.TrimSpace(config.Currency))

	if config.LedgerFile == "" {
		return nil, fmt.Errorf("%s_LEDGER_FILE is empty", EnvPrefix)
	}
	if config.Currency == "" {
		return nil, fmt.Errorf("%s_CURRENCY is empty", EnvPrefix)
	}
	return &config, nil
}
