package check

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnoswap-labs/gqlfront/language/parser"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".gqlfront.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `name: api-queries
extensions: [.graphql]
ignore_paths:
  - vendor
  - "*.gen.graphql"
parse:
  no_source: true
  max_depth: 32
  allow_null_value: true
cache:
  dir: .cache
  max_age: 2h
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, Config{
		Name:        "api-queries",
		Extensions:  []string{".graphql"},
		IgnorePaths: []string{"vendor", "*.gen.graphql"},
		Parse: parser.Options{
			NoSource:       true,
			MaxDepth:       32,
			AllowNullValue: true,
		},
		Cache: CacheConfig{
			Dir:    ".cache",
			MaxAge: 2 * time.Hour,
		},
	}, config)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		config, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("empty file", func(t *testing.T) {
		config, err := LoadConfig(writeConfig(t, ""))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), config)
	})

	t.Run("no path", func(t *testing.T) {
		config, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, []string{".graphql", ".gql"}, config.Extensions)
		assert.Equal(t, parser.DefaultMaxDepth, config.Parse.MaxDepth)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := LoadConfig(writeConfig(t, "parse: [not, a, map]"))
		assert.Error(t, err)
	})
}

func TestLoadConfigEnvironment(t *testing.T) {
	t.Setenv("GQLFRONT_PARSE_MAX_DEPTH", "8")
	t.Setenv("GQLFRONT_PARSE_ALLOW_NULL_VALUE", "true")
	t.Setenv("GQLFRONT_IGNORE_PATHS", "vendor,testdata")
	t.Setenv("GQLFRONT_CACHE_MAX_AGE", "90m")

	config, err := LoadConfig(writeConfig(t, "parse:\n  max_depth: 64\n"))
	require.NoError(t, err)
	assert.Equal(t, 8, config.Parse.MaxDepth)
	assert.True(t, config.Parse.AllowNullValue)
	assert.Equal(t, []string{"vendor", "testdata"}, config.IgnorePaths)
	assert.Equal(t, 90*time.Minute, config.Cache.MaxAge)
}

func TestWriteConfigRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".gqlfront.yaml")
	want := DefaultConfig()
	want.IgnorePaths = []string{"vendor"}
	want.Cache = CacheConfig{Dir: ".gqlfront-cache", MaxAge: time.Hour}
	require.NoError(t, WriteConfig(path, want))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestNewFromConfigCache(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	config := DefaultConfig()
	config.Cache.Dir = "cache"

	_, err := NewFromConfig(root, config)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "cache"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
