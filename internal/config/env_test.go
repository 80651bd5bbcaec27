package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesFields(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "super-secret")
	t.Setenv("AUTH_TOKEN_ISSUER", "blog-server")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://u:p@localhost:5432/blog")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("SERVER_REQUEST_TIMEOUT", "30s")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.NoError(t, err)

	assert.Equal(t, "super-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "blog-server", cfg.Auth.TokenIssuer)
	assert.Equal(t, "postgres://u:p@localhost:5432/blog", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("SERVER_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: StructuredConfig{
				Auth:    Auth{TokenSignKey: "key"},
				Storage: Storage{DB: DB{DSN: "postgres://localhost/blog"}},
			},
			wantErr: nil,
		},
		{
			name: "missing sign key",
			cfg: StructuredConfig{
				Storage: Storage{DB: DB{DSN: "postgres://localhost/blog"}},
			},
			wantErr: ErrNoTokenSignKey,
		},
		{
			name:    "missing DSN",
			cfg:     StructuredConfig{Auth: Auth{TokenSignKey: "key"}},
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
