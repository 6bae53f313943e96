package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("bankaccount-missing-test.env")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	require.NotNil(t, cfg.Log)
	assert.Equal(t, "auto", cfg.Log.Format)
	assert.Equal(t, "[bankaccount]", cfg.Log.Prefix)
	require.NotNil(t, cfg.Account)
	assert.Equal(t, -100.0, cfg.Account.OverdraftLimit)
	assert.Equal(t, 0.05, cfg.Account.OverdraftRate)
	assert.Equal(t, 50.0, cfg.Account.MinimumBalance)
	assert.Equal(t, 2.55, cfg.Account.ManagementFee)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("ACCOUNT_MINIMUM_BALANCE", "250")

	cfg, err := Load("bankaccount-missing-test.env")
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 250.0, cfg.Account.MinimumBalance)
}

func TestLoadFromFile(t *testing.T) {
	// Registers cleanup so the value godotenv sets is removed afterwards.
	t.Setenv("ACCOUNT_MANAGEMENT_FEE", "0")
	require.NoError(t, os.Unsetenv("ACCOUNT_MANAGEMENT_FEE"))

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ACCOUNT_MANAGEMENT_FEE=3.75\n"), 0o600))

	cfg, err := Load("bankaccount-missing-test.env", path)
	require.NoError(t, err)
	assert.Equal(t, 3.75, cfg.Account.ManagementFee)
}

func TestLoadInvalidValue(t *testing.T) {
	t.Setenv("ACCOUNT_OVERDRAFT_RATE", "five percent")

	_, err := Load("bankaccount-missing-test.env")
	assert.Error(t, err)
}

func TestFindEnvTest(t *testing.T) {
	_, err := FindEnvTest("bankaccount-missing-test.env")
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "x.env")
	require.NoError(t, os.WriteFile(path, nil, 0o600))
	found, err := FindEnvTest(path)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}
