package base

import (
	"encoding/json"
	"github.com/half-nothing/simple-hrm/internal/interfaces/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestManagerCreatesDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	manager := NewManagerWithPath(NewLoggerWithWriter(io.Discard, false), path)

	c, result := manager.Load()
	assert.Nil(t, c)
	assert.True(t, result.IsFail())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	written := &config.Config{}
	require.NoError(t, json.Unmarshal(data, written))
	assert.Equal(t, config.ConfVersion.String(), written.ConfigVersion)

	c, result = manager.Load()
	require.False(t, result.IsFail(), "written default config must load: %v", result.Error())
	assert.Equal(t, "0.0.0.0:6810", c.Server.HttpServer.Address)
}

func TestManagerRejectsInvalidJson(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
	manager := NewManagerWithPath(NewLoggerWithWriter(io.Discard, false), path)

	_, result := manager.Load()
	assert.True(t, result.IsFail())
	assert.Error(t, result.OriginErr())
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HRM_BASE_TEST_VALUE=loaded\n"), 0644))
	t.Cleanup(func() { _ = os.Unsetenv("HRM_BASE_TEST_VALUE") })

	loadEnvFile(NewLoggerWithWriter(io.Discard, false), path)
	assert.Equal(t, "loaded", os.Getenv("HRM_BASE_TEST_VALUE"))

	loadEnvFile(NewLoggerWithWriter(io.Discard, false), filepath.Join(t.TempDir(), "missing.env"))
}
