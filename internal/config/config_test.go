package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestInitConfigurationDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := InitConfiguration("")
	require.NoError(t, err)

	want := &Config{
		Listen:    DefaultListen,
		Mongo:     map[string]string{"db": DefaultMongoDb},
		CacheSize: DefaultCacheSize,
		CacheTTL:  DefaultCacheTTL,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}

	ttl, err := cfg.CacheTTLDuration()
	require.NoError(t, err)
	require.Equal(t, 10*time.Minute, ttl)
}

func TestInitConfigurationFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "config.json", `{
		"Listen": ":9000",
		"Mongo": {"uri": "mongodb://db:27017", "db": "journal"},
		"Debug": true,
		"CacheSize": 16,
		"CacheTTL": "30s"
	}`)

	cfg, err := InitConfiguration(path)
	require.NoError(t, err)
	require.Equal(t, ":9000", cfg.Listen)
	require.Equal(t, "mongodb://db:27017", cfg.Mongo["uri"])
	require.Equal(t, "journal", cfg.Mongo["db"])
	require.True(t, cfg.Debug)
	require.Equal(t, 16, cfg.CacheSize)
	require.Equal(t, "30s", cfg.CacheTTL)
}

func TestInitConfigurationEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeFile(t, dir, "config.json", `{"Listen": ":9000", "Mongo": {"uri": "mongodb://file"}}`)
	writeFile(t, dir, ".env", "TDAPI_MONGO_DB=fromdotenv\n")

	t.Setenv("TDAPI_LISTEN", ":7000")
	t.Setenv("TDAPI_MONGO_URI", "mongodb://env")
	t.Setenv("TDAPI_DEBUG", "true")
	t.Cleanup(func() { os.Unsetenv("TDAPI_MONGO_DB") })

	cfg, err := InitConfiguration(path)
	require.NoError(t, err)
	require.Equal(t, ":7000", cfg.Listen)
	require.Equal(t, "mongodb://env", cfg.Mongo["uri"])
	require.Equal(t, "fromdotenv", cfg.Mongo["db"])
	require.True(t, cfg.Debug)
}

func TestInitConfigurationErrors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := InitConfiguration(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	bad := writeFile(t, dir, "bad.json", `{"Listen": `)
	_, err = InitConfiguration(bad)
	require.ErrorContains(t, err, "failed to parse json file")

	ttl := writeFile(t, dir, "ttl.json", `{"CacheTTL": "soon"}`)
	_, err = InitConfiguration(ttl)
	require.ErrorContains(t, err, "invalid CacheTTL")

	t.Setenv("TDAPI_DEBUG", "maybe")
	_, err = InitConfiguration("")
	require.ErrorContains(t, err, "invalid TDAPI_DEBUG")
}
