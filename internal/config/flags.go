// SPDX-License-Identifier: Apache-2.0

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all server configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "15m", "1h")
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *ServerConfig {
	var serverAddress string
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration

	flag.StringVar(&serverAddress, "a", "", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	flag.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	flag.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 15m, 1h)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &ServerConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// ParseBotFlags parses all bot configuration flags.
//
// Flags:
//
//	-telegram-token Telegram Bot API token
//	-api-address base address of the notes API
//	-request-timeout outbound request timeout
//	-service-username bot service account username
//	-service-password bot service account password
func ParseBotFlags() *BotConfig {
	var telegramToken string
	var apiAddress string
	var requestTimeout time.Duration
	var serviceUsername string
	var servicePassword string

	flag.StringVar(&telegramToken, "telegram-token", "", "Telegram Bot API token")
	flag.StringVar(&apiAddress, "api-address", "", "Notes API base address")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s)")
	flag.StringVar(&serviceUsername, "service-username", "", "Bot service account username")
	flag.StringVar(&servicePassword, "service-password", "", "Bot service account password")

	flag.Parse()

	return &BotConfig{
		Telegram: Telegram{
			Token: telegramToken,
		},
		Adapter: Adapter{
			HTTPAddress:    apiAddress,
			RequestTimeout: requestTimeout,
		},
		Service: ServiceAccount{
			Username: serviceUsername,
			Password: servicePassword,
		},
	}
}
