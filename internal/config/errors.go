// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token signing key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidTelegramConfigs indicates a missing Telegram bot token.
	ErrInvalidTelegramConfigs = errors.New("invalid telegram configuration")
	// ErrInvalidAdapterConfigs indicates invalid bot adapter settings
	// (for example, missing API address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidServiceAccountConfigs indicates an incomplete bot service
	// account credential.
	ErrInvalidServiceAccountConfigs = errors.New("invalid service account configuration")
)
