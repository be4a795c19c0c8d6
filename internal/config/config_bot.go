// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// GetBotConfig loads, merges, and validates the bot configuration.
//
// Sources are merged in the following priority order (first source wins for
// non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. Built-in defaults
func GetBotConfig() (*BotConfig, error) {
	envCfg := &BotConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	config := new(BotConfig)
	for _, cfg := range []*BotConfig{envCfg, ParseBotFlags(), botDefaults()} {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

// botDefaults returns the built-in fallback values merged in last.
func botDefaults() *BotConfig {
	return &BotConfig{
		Adapter: Adapter{
			HTTPAddress:    "http://localhost:8080",
			RequestTimeout: 15 * time.Second,
		},
	}
}
