package internal

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/gnoswap-labs/gqlfront/internal/types"
	"github.com/gnoswap-labs/gqlfront/language/parser"
)

type recorder struct {
	mu      sync.Mutex
	results map[string][]tt.Issue
}

func (r *recorder) record(filename string, issues []tt.Issue) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.results == nil {
		r.results = make(map[string][]tt.Issue)
	}
	r.results[filename] = issues
}

func (r *recorder) get(filename string) ([]tt.Issue, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	issues, ok := r.results[filename]
	return issues, ok
}

func TestHandleFileEvent(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/q/a.graphql", []byte("query"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "/q/notes.txt", []byte("query"), 0o644))

	engine := newTestEngine(t, parser.Options{}, WithFs(fs))
	rec := &recorder{}
	engine.onResult = rec.record

	engine.handleFileEvent(fsnotify.Event{Name: "/q/notes.txt", Op: fsnotify.Write})
	engine.handleFileEvent(fsnotify.Event{Name: "/q/a.graphql", Op: fsnotify.Remove})
	_, ok := rec.get("/q/a.graphql")
	assert.False(t, ok)
	_, ok = rec.get("/q/notes.txt")
	assert.False(t, ok)

	engine.handleFileEvent(fsnotify.Event{Name: "/q/a.graphql", Op: fsnotify.Write})
	issues, ok := rec.get("/q/a.graphql")
	require.True(t, ok)
	require.Len(t, issues, 1)
	assert.Equal(t, "Expected Name, found EOF", issues[0].Message)
}

func TestStartWatching(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	engine := newTestEngine(t, parser.Options{})
	rec := &recorder{}

	require.NoError(t, engine.StartWatching([]string{dir}, rec.record))
	defer engine.StopWatching()

	assert.ErrorIs(t, engine.StartWatching([]string{dir}, rec.record), errAlreadyWatching)

	path := filepath.Join(dir, "live.graphql")
	require.NoError(t, os.WriteFile(path, []byte("{ a }"), 0o644))

	assert.Eventually(t, func() bool {
		issues, ok := rec.get(path)
		return ok && len(issues) == 0
	}, 5*time.Second, 50*time.Millisecond)

	require.NoError(t, engine.StopWatching())
	assert.NoError(t, engine.StopWatching())
}

func TestStartWatchingNeedsOsFs(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, parser.Options{}, WithFs(afero.NewMemMapFs()))
	err := engine.StartWatching([]string{"/"}, func(string, []tt.Issue) {})
	assert.ErrorIs(t, err, errWatchNeedsOsFs)
	assert.NoError(t, engine.StopWatching())
}
