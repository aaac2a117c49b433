package internal

import (
	"crypto/md5"
	"errors"
	"fmt"
	"go/token"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/gnoswap-labs/gqlfront/gqlerrors"
	tt "github.com/gnoswap-labs/gqlfront/internal/types"
	"github.com/gnoswap-labs/gqlfront/language/ast"
	"github.com/gnoswap-labs/gqlfront/language/parser"
	"github.com/gnoswap-labs/gqlfront/language/source"
)

const defaultDocumentCacheSize = 256

// DefaultExtensions are the file extensions treated as query documents.
var DefaultExtensions = []string{".graphql", ".gql"}

// Engine manages the checking process.
type Engine struct {
	fs      afero.Fs
	logger  *zap.Logger
	options parser.Options
	// optionsKey tags cache entries with the options they were found with.
	optionsKey string

	cache     *Cache
	documents *lru.Cache[string, *ast.Document]

	mu           sync.RWMutex
	ignoredPaths []string
	extensions   []string

	// watch state, see watch.go
	watcher  *fsnotify.Watcher
	watching bool
	onResult func(filename string, issues []tt.Issue)
}

// Option configures an Engine.
type Option func(*Engine)

// WithFs sets the filesystem documents are read from. The default is the
// OS filesystem.
func WithFs(fs afero.Fs) Option {
	return func(e *Engine) { e.fs = fs }
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithCache stores per-file results in c between runs.
func WithCache(c *Cache) Option {
	return func(e *Engine) { e.cache = c }
}

// WithExtensions replaces the set of extensions considered query
// documents.
func WithExtensions(exts ...string) Option {
	return func(e *Engine) {
		if len(exts) > 0 {
			e.extensions = exts
		}
	}
}

// NewEngine creates a new engine that parses with opts.
func NewEngine(opts parser.Options, options ...Option) (*Engine, error) {
	documents, err := lru.New[string, *ast.Document](defaultDocumentCacheSize)
	if err != nil {
		return nil, fmt.Errorf("error creating document cache: %w", err)
	}

	engine := &Engine{
		fs:         afero.NewOsFs(),
		logger:     zap.NewNop(),
		options:    opts,
		optionsKey: optionsFingerprint(opts),
		documents:  documents,
		extensions: DefaultExtensions,
	}
	for _, option := range options {
		option(engine)
	}
	return engine, nil
}

// UseCache attaches c after construction, for caches that live on the
// engine's own filesystem.
func (e *Engine) UseCache(c *Cache) { e.cache = c }

// Fs returns the filesystem the engine reads from.
func (e *Engine) Fs() afero.Fs { return e.fs }

// Extensions returns the extensions of files the engine checks.
func (e *Engine) Extensions() []string { return e.extensions }

// Run parses the given file and returns one issue per syntax error.
// Ignored files yield no issues.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	if e.IsIgnored(filename) {
		e.logger.Debug("Skipping ignored file", zap.String("file", filename))
		return nil, nil
	}

	if e.cache != nil {
		if issues, ok := e.cache.Get(filename, e.optionsKey); ok {
			e.logger.Debug("Cache hit", zap.String("file", filename))
			return issues, nil
		}
	}

	body, err := afero.ReadFile(e.fs, filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	issues, err := e.RunSource(filename, body)
	if err != nil {
		return nil, err
	}

	if e.cache != nil {
		if err := e.cache.Set(filename, e.optionsKey, issues); err != nil {
			e.logger.Warn("Failed to update cache", zap.String("file", filename), zap.Error(err))
		}
	}
	return issues, nil
}

// RunSource parses body under the given name and returns one issue per
// syntax error.
func (e *Engine) RunSource(name string, body []byte) ([]tt.Issue, error) {
	_, err := e.Parse(source.New(string(body), name))
	if err == nil {
		return nil, nil
	}

	var syntaxErr *gqlerrors.SyntaxError
	if errors.As(err, &syntaxErr) {
		return []tt.Issue{issueFromSyntaxError(name, syntaxErr)}, nil
	}
	return nil, fmt.Errorf("error parsing %s: %w", name, err)
}

// Parse parses src with the engine's options. Documents are remembered by
// name and content, so parsing unchanged text again is free.
//
// The returned document may be shared with other callers of Parse and
// must not be modified.
func (e *Engine) Parse(src *source.Source) (*ast.Document, error) {
	key := documentKey(src)
	if doc, ok := e.documents.Get(key); ok {
		return doc, nil
	}

	doc, err := parser.Parse(src, e.options)
	if err != nil {
		return nil, err
	}
	e.documents.Add(key, doc)
	return doc, nil
}

// ParseFile reads and parses a document from the engine's filesystem.
func (e *Engine) ParseFile(filename string) (*ast.Document, error) {
	body, err := afero.ReadFile(e.fs, filename)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return e.Parse(source.New(string(body), filename))
}

// IgnorePath excludes files matching pattern from Run. A pattern is a
// filepath.Match glob tested against the whole path, its base name and
// each of its leading directories.
func (e *Engine) IgnorePath(pattern string) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.ignoredPaths = append(e.ignoredPaths, filepath.Clean(pattern))
}

// IsIgnored reports whether path matches an ignored pattern.
func (e *Engine) IsIgnored(path string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if len(e.ignoredPaths) == 0 {
		return false
	}

	path = filepath.Clean(path)
	candidates := []string{path, filepath.Base(path)}
	for dir := filepath.Dir(path); dir != "." && dir != string(filepath.Separator); dir = filepath.Dir(dir) {
		candidates = append(candidates, dir, filepath.Base(dir))
	}

	for _, pattern := range e.ignoredPaths {
		for _, candidate := range candidates {
			if ok, _ := filepath.Match(pattern, candidate); ok {
				return true
			}
		}
	}
	return false
}

// HasExtension reports whether path names a query document.
func (e *Engine) HasExtension(path string) bool {
	ext := filepath.Ext(path)
	for _, target := range e.extensions {
		if ext == target {
			return true
		}
	}
	return false
}

func issueFromSyntaxError(filename string, err *gqlerrors.SyntaxError) tt.Issue {
	pos := token.Position{
		Filename: filename,
		Offset:   err.Offset,
		Line:     err.Line,
		Column:   err.Column,
	}
	return tt.Issue{
		Rule:     tt.RuleSyntaxError,
		Category: "syntax",
		Filename: filename,
		Message:  err.Message,
		Note:     err.Highlight(),
		Start:    pos,
		End:      pos,
	}
}

func optionsFingerprint(opts parser.Options) string {
	sum := md5.Sum([]byte(fmt.Sprintf("%#v", opts)))
	return fmt.Sprintf("%x", sum)
}

func documentKey(src *source.Source) string {
	sum := md5.Sum([]byte(src.Name + "\x00" + src.Body))
	return fmt.Sprintf("%x", sum)
}
