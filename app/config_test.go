package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/GaryWal/gamingplatformfresh/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestValidateConfig(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		err := ValidateConfig(DefaultConfig())
		assert.Nil(t, err, "default config should be valid")
	})
	t.Run("missing serve address", func(t *testing.T) {
		config := DefaultConfig()
		config.ServeAddr = ""
		err := ValidateConfig(config)
		require.NotNil(t, err, "config without serve address should be invalid")
	})
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{
			"serve_addr": ":9000",
			"log": {"stdout_log_level": "debug", "max_size": 16, "keep_days": 7}
		}`), 0600), "write config file should not fail")
		config, err := LoadConfigFromFile(path)
		require.Nilf(t, err, "load should not fail but got: %s", errors.Prettify(err))
		assert.Equal(t, ":9000", config.ServeAddr, "serve address should match expected")
		assert.Equal(t, zapcore.DebugLevel, config.Log.StdoutLogLevel, "log level should match expected")
	})
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "does-not-exist.json"))
		require.NotNil(t, err, "load of missing file should fail")
	})
	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(`{ not json`), 0600), "write config file should not fail")
		_, err := LoadConfigFromFile(path)
		require.NotNil(t, err, "load of malformed file should fail")
	})
}

func TestLoadCatalog(t *testing.T) {
	t.Run("built-in catalog", func(t *testing.T) {
		catalog, err := loadCatalog(DefaultConfig())
		require.Nilf(t, err, "load should not fail but got: %s", errors.Prettify(err))
		require.Len(t, catalog, 3, "built-in catalog should contain three games")
		assert.Equal(t, "racing-1", string(catalog[0].ID), "first game should match expected")
	})
	t.Run("catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
			{"id": "pinball-1", "name": "Pinball Wizard", "type": "arcade",
			 "version": "2.1.0", "size": 1024, "status": "active"}
		]`), 0600), "write catalog file should not fail")
		config := DefaultConfig()
		config.CatalogFile.String = path
		config.CatalogFile.Valid = true
		catalog, err := loadCatalog(config)
		require.Nilf(t, err, "load should not fail but got: %s", errors.Prettify(err))
		require.Len(t, catalog, 1, "catalog should contain the configured game")
		assert.Equal(t, "Pinball Wizard", catalog[0].Name, "game name should match expected")
	})
	t.Run("missing catalog file", func(t *testing.T) {
		config := DefaultConfig()
		config.CatalogFile.String = filepath.Join(t.TempDir(), "does-not-exist.json")
		config.CatalogFile.Valid = true
		_, err := loadCatalog(config)
		require.NotNil(t, err, "load of missing catalog file should fail")
	})
}
