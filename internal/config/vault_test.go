package config

import (
	"os"
	"path/filepath"
	"testing"

	"careersie/internal/errors"

	"github.com/hashicorp/vault/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *errors.Logger {
	logger, _ := errors.New("error")
	return logger
}

func TestExtractSecretVersion(t *testing.T) {
	tests := []struct {
		name        string
		version     any
		expected    int64
		expectError bool
	}{
		{name: "int64 value", version: int64(42), expected: 42},
		{name: "float64 value", version: float64(7.0), expected: 7},
		{name: "string value", version: "3", expected: 3},
		{name: "invalid string value", version: "not-a-number", expectError: true},
		{name: "unsupported type", version: []string{"42"}, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			secret := &api.Secret{
				Data: map[string]any{
					"metadata": map[string]any{"version": tt.version},
				},
			}

			result, err := extractSecretVersion(secret, "secret/data/test")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, result)
			}
		})
	}
}

func TestExtractSecretVersionMissingMetadata(t *testing.T) {
	secret := &api.Secret{Data: map[string]any{}}

	_, err := extractSecretVersion(secret, "secret/data/test")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing 'metadata' field")
}

func TestResolveVaultToken(t *testing.T) {
	t.Run("direct token", func(t *testing.T) {
		token, err := resolveVaultToken(VaultConfig{Token: "direct-token"}, newTestLogger())
		require.NoError(t, err)
		assert.Equal(t, "direct-token", token)
	})

	t.Run("token from file", func(t *testing.T) {
		tokenFile := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(tokenFile, []byte("  file-token\n"), 0600))

		token, err := resolveVaultToken(VaultConfig{TokenFile: tokenFile}, newTestLogger())
		require.NoError(t, err)
		assert.Equal(t, "file-token", token)
	})

	t.Run("missing token", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{}, newTestLogger())
		assert.Error(t, err)
	})

	t.Run("unreadable token file", func(t *testing.T) {
		_, err := resolveVaultToken(VaultConfig{TokenFile: "/nonexistent/token"}, newTestLogger())
		assert.Error(t, err)
	})
}

func TestLoadSingleCertificate(t *testing.T) {
	tlsData := &VaultSecret{
		Data: map[string]any{
			"cert":  "cert-pem",
			"key":   "key-pem",
			"empty": "",
			"wrong": 42,
		},
	}

	var target string

	assert.Equal(t, 1, loadSingleCertificate(tlsData, "cert", &target))
	assert.Equal(t, "cert-pem", target)

	target = ""
	assert.Equal(t, 0, loadSingleCertificate(tlsData, "empty", &target))
	assert.Empty(t, target)

	assert.Equal(t, 0, loadSingleCertificate(tlsData, "wrong", &target))
	assert.Equal(t, 0, loadSingleCertificate(tlsData, "missing", &target))
}

func TestLoadConfigAppliesVaultSecrets(t *testing.T) {
	// With vault enabled and no token configured, LoadConfig must fail while
	// initializing the vault client rather than silently skipping secrets.
	t.Setenv("CAREERSIE_VAULT_ENABLED", "true")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault token is required")
}

func TestApplyVaultSecretsDisabled(t *testing.T) {
	config := &Config{Vault: VaultConfig{Enabled: false}}

	err := ApplyVaultSecrets(config, newTestLogger())
	assert.NoError(t, err)
}

func TestNewVaultClientDisabled(t *testing.T) {
	client, err := NewVaultClient(VaultConfig{Enabled: false}, newTestLogger())
	assert.NoError(t, err)
	assert.Nil(t, client)
}
