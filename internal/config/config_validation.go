// SPDX-License-Identifier: Apache-2.0

package config

// validate checks that the final merged [ServerConfig] satisfies all
// application invariants before it is used at startup.
//
// The database DSN and the token signing key have no sane defaults and must
// be provided through one of the configuration sources.
func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

// validate checks that the final merged [BotConfig] satisfies all bot
// invariants before the bot starts polling.
func (cfg *BotConfig) validate() error {
	if cfg.Telegram.Token == "" {
		return ErrInvalidTelegramConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Service.Username == "" || cfg.Service.Password == "" {
		return ErrInvalidServiceAccountConfigs
	}

	return nil
}
