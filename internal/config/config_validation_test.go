package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "issuer",
			TokenDuration: time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/bookworm"}},
		Server:  Server{HTTPAddress: "localhost:8080"},
		Media:   Media{Address: "https://media.example.com"},
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validConfig().validate())
}

func TestValidate_MissingFields(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "missing http address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing token sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "missing media address",
			mutate:  func(cfg *StructuredConfig) { cfg.Media.Address = "" },
			wantErr: ErrInvalidMediaConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, "bookworm-server", cfg.App.TokenIssuer)
	assert.Equal(t, 720*time.Hour, cfg.App.TokenDuration)
}

func TestApplyDefaults_DoesNotOverride(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{TokenIssuer: "custom", TokenDuration: time.Minute},
	}
	cfg.applyDefaults()

	assert.Equal(t, "custom", cfg.App.TokenIssuer)
	assert.Equal(t, time.Minute, cfg.App.TokenDuration)
}
