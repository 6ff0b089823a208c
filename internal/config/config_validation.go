// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Bookworm Authors

package config

import "time"

const (
	// defaultTokenIssuer is the "iss" claim used when no issuer is configured.
	defaultTokenIssuer = "bookworm-server"

	// defaultTokenDuration is the token lifetime used when no duration is
	// configured: 30 days.
	defaultTokenDuration = 720 * time.Hour
)

// applyDefaults fills in configuration values that have sensible fallbacks
// and are not required from the operator.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = defaultTokenIssuer
	}

	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = defaultTokenDuration
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Media.Address == "" {
		return ErrInvalidMediaConfigs
	}

	return nil
}
