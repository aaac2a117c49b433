package internal

import (
	"go/token"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnoswap-labs/gqlfront/internal/types"
)

const testOptionsKey = "options"

func sampleIssues(filename string) []tt.Issue {
	pos := token.Position{Filename: filename, Offset: 5, Line: 1, Column: 6}
	return []tt.Issue{{
		Rule:     tt.RuleSyntaxError,
		Category: "syntax",
		Filename: filename,
		Message:  "Expected Name, found EOF",
		Start:    pos,
		End:      pos,
	}}
}

func TestCache(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cache, err := NewCache(fs, "/cache", time.Hour)
	require.NoError(t, err)

	t.Run("SaveAndLoad", func(t *testing.T) {
		filename := "/src/a.graphql"
		require.NoError(t, afero.WriteFile(fs, filename, []byte("query"), 0o644))

		issues := sampleIssues(filename)
		require.NoError(t, cache.Set(filename, testOptionsKey, issues))

		loaded, found := cache.Get(filename, testOptionsKey)
		assert.True(t, found)
		assert.Equal(t, issues, loaded)

		reopened, err := NewCache(fs, "/cache", time.Hour)
		require.NoError(t, err)
		loaded, found = reopened.Get(filename, testOptionsKey)
		assert.True(t, found)
		assert.Equal(t, issues, loaded)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, found := cache.Get("/src/nonexistent.graphql", testOptionsKey)
		assert.False(t, found)
	})

	t.Run("FileModified", func(t *testing.T) {
		filename := "/src/modified.graphql"
		require.NoError(t, afero.WriteFile(fs, filename, []byte("query"), 0o644))
		require.NoError(t, cache.Set(filename, testOptionsKey, sampleIssues(filename)))

		require.NoError(t, afero.WriteFile(fs, filename, []byte("query Q { a }"), 0o644))

		_, found := cache.Get(filename, testOptionsKey)
		assert.False(t, found)
	})

	t.Run("FileRemoved", func(t *testing.T) {
		filename := "/src/removed.graphql"
		require.NoError(t, afero.WriteFile(fs, filename, []byte("query"), 0o644))
		require.NoError(t, cache.Set(filename, testOptionsKey, sampleIssues(filename)))
		require.NoError(t, fs.Remove(filename))

		_, found := cache.Get(filename, testOptionsKey)
		assert.False(t, found)
	})

	t.Run("InvalidateAll", func(t *testing.T) {
		filename := "/src/b.graphql"
		require.NoError(t, afero.WriteFile(fs, filename, []byte("{ a }"), 0o644))
		require.NoError(t, cache.Set(filename, testOptionsKey, nil))

		require.NoError(t, cache.InvalidateAll())
		_, found := cache.Get(filename, testOptionsKey)
		assert.False(t, found)
	})
}

func TestCacheMaxAge(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cache, err := NewCache(fs, "/cache", time.Minute)
	require.NoError(t, err)

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	filename := "/src/a.graphql"
	require.NoError(t, afero.WriteFile(fs, filename, []byte("{ a }"), 0o644))
	require.NoError(t, cache.Set(filename, testOptionsKey, nil))

	now = now.Add(30 * time.Second)
	_, found := cache.Get(filename, testOptionsKey)
	assert.True(t, found)

	now = now.Add(time.Minute)
	_, found = cache.Get(filename, testOptionsKey)
	assert.False(t, found)
}

func TestCacheMissingFileOnSet(t *testing.T) {
	t.Parallel()

	cache, err := NewCache(afero.NewMemMapFs(), "/cache", 0)
	require.NoError(t, err)
	assert.Error(t, cache.Set("/nope.graphql", testOptionsKey, nil))
}

func TestCacheOptionsKey(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	cache, err := NewCache(fs, "/cache", time.Hour)
	require.NoError(t, err)

	filename := "/src/a.graphql"
	require.NoError(t, afero.WriteFile(fs, filename, []byte("query"), 0o644))
	require.NoError(t, cache.Set(filename, "strict", sampleIssues(filename)))

	_, found := cache.Get(filename, "lenient")
	assert.False(t, found)

	// the mismatch dropped the entry
	_, found = cache.Get(filename, "strict")
	assert.False(t, found)
}
