package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, DefaultAPIURL, cfg.APIURL)
	require.Equal(t, 5, cfg.DefaultLimit)
	require.Equal(t, 30, cfg.TimeoutSec)
	require.True(t, cfg.UISettings.ShowTiming)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cs := &configService{filePath: path}

	cfg := DefaultConfig()
	cfg.APIURL = "http://search.internal:9000"
	cfg.DefaultLimit = 20
	require.NoError(t, cs.Save(cfg))

	loaded, err := cs.Load()
	require.NoError(t, err)
	require.Equal(t, "http://search.internal:9000", loaded.APIURL)
	require.Equal(t, 20, loaded.DefaultLimit)
	require.Equal(t, cfg.UISettings, loaded.UISettings)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cs := &configService{filePath: filepath.Join(t.TempDir(), "nope.toml")}
	cfg, err := cs.Load()
	require.NoError(t, err)
	require.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPathAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// Partial config: only the URL is set.
	require.NoError(t, os.WriteFile(path, []byte("api_url = \"http://host:8000\"\n"), 0644))

	cs := &configService{filePath: path}
	cfg, err := cs.LoadFromPath(path)
	require.NoError(t, err)
	require.Equal(t, "http://host:8000", cfg.APIURL)
	require.Equal(t, 5, cfg.DefaultLimit)
	require.Equal(t, 30, cfg.TimeoutSec)
	require.Equal(t, 3, cfg.UISettings.AbstractRows)
}

func TestLoadFromPathRejectsBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("api_url = [broken"), 0644))

	cs := &configService{filePath: path}
	_, err := cs.LoadFromPath(path)
	require.Error(t, err)
}

func TestResolveAPIURL(t *testing.T) {
	cfg := DefaultConfig()
	cfg.APIURL = "http://from-config:8000"

	t.Run("env wins", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "http://from-env:8000")
		require.Equal(t, "http://from-env:8000", ResolveAPIURL(cfg))
	})

	t.Run("config when env unset", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "")
		require.Equal(t, "http://from-config:8000", ResolveAPIURL(cfg))
	})

	t.Run("default when both empty", func(t *testing.T) {
		t.Setenv(EnvAPIURL, "")
		require.Equal(t, DefaultAPIURL, ResolveAPIURL(&Config{}))
	})
}
