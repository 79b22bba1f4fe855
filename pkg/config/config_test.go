package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SQLGATE_CONFIG_PATH", t.TempDir())

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "HS256", settings.JWTAlgorithm)
	assert.Equal(t, 30, settings.JWTExpireMinutes)
	assert.Equal(t, "8000", settings.Port)
	assert.Equal(t, 30*time.Minute, settings.TokenTTL())
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
parameter_database_url: postgres://localhost/params
transaction_database_url: postgres://localhost/data
jwt_secret: file-secret
jwt_expire_minutes: 5
port: "9000"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	t.Setenv("SQLGATE_CONFIG_PATH", dir)

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/params", settings.ParameterDatabaseURL)
	assert.Equal(t, "file-secret", settings.JWTSecret)
	assert.Equal(t, 5, settings.JWTExpireMinutes)
	assert.Equal(t, "9000", settings.Port)
	assert.NoError(t, settings.Validate())
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	content := "jwt_secret: file-secret\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o600))
	t.Setenv("SQLGATE_CONFIG_PATH", dir)
	t.Setenv("SQLGATE_JWT_SECRET", "env-secret")
	t.Setenv("SQLGATE_JWT_EXPIRE_MINUTES", "120")

	settings, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "env-secret", settings.JWTSecret)
	assert.Equal(t, 120, settings.JWTExpireMinutes)
}

func TestValidate(t *testing.T) {
	settings := newDefault()
	settings.ParameterDatabaseURL = "postgres://localhost/params"
	settings.TransactionDatabaseURL = "postgres://localhost/data"
	settings.JWTSecret = "secret"

	require.NoError(t, settings.Validate())

	settings.JWTAlgorithm = "RS256"
	assert.Error(t, settings.Validate())

	settings.JWTAlgorithm = "HS512"
	require.NoError(t, settings.Validate())

	settings.JWTSecret = ""
	assert.Error(t, settings.Validate())
}

func TestValidateMissingURLs(t *testing.T) {
	settings := newDefault()
	settings.JWTSecret = "secret"
	assert.Error(t, settings.Validate())

	settings.ParameterDatabaseURL = "postgres://localhost/params"
	assert.Error(t, settings.Validate())
}
