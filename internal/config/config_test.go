package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	require.NoError(t, Load())

	assert.Equal(t, "0.0.0.0:8080", C().HTTP().Address())
	assert.Equal(t, 10*time.Second, C().HTTP().ReadTimeout())
	assert.Equal(t, "info", C().Logger().Level())
	assert.True(t, C().Logger().AsJSON())
	assert.Equal(t, "dynamodb", C().Storage().Driver())
	assert.False(t, C().Storage().UseMemory())
	assert.Equal(t, "line_items", C().DynamoDB().LineItemsTable())
	assert.Equal(t, "us-east-1", C().DynamoDB().Region())
	assert.False(t, C().Payments().MockMode())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("STORAGE_DRIVER", "Memory")
	t.Setenv("WORK_ORDERS_TABLE", "os_table")
	t.Setenv("MERCADOPAGO_MOCK", "yes")
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "  TEST-123 ")

	require.NoError(t, Load())

	assert.Equal(t, 9090, C().HTTP().Port())
	assert.Equal(t, 3*time.Second, C().HTTP().ShutdownTimeout())
	assert.True(t, C().Storage().UseMemory())
	assert.Equal(t, "os_table", C().DynamoDB().WorkOrdersTable())
	assert.True(t, C().Payments().MockMode())
	assert.Equal(t, "TEST-123", C().Payments().AccessToken())
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("STORAGE_DRIVER", "postgres")

	err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.Load Storage")
}

func TestLoad_RejectsMalformedPort(t *testing.T) {
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "eighty")

	assert.Error(t, Load())
}

func TestLoad_ReadsDotenvWhenLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("LOGGER_LEVEL=debug\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	t.Setenv("LOGGER_LEVEL", "")
	require.NoError(t, os.Unsetenv("LOGGER_LEVEL"))

	require.NoError(t, Load(path))
	assert.Equal(t, "debug", C().Logger().Level())
}

func TestLoad_MissingDotenvIsIgnored(t *testing.T) {
	t.Setenv("APP_ENV", "local")

	require.NoError(t, Load(filepath.Join(t.TempDir(), "absent.env")))
}
