package internal

import (
	"crypto/md5"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/afero"

	tt "github.com/gnoswap-labs/gqlfront/internal/types"
)

const (
	cacheFileName = "check_cache.gob"

	// DefaultCacheMaxAge is used when no max age is configured.
	DefaultCacheMaxAge = 24 * time.Hour
)

type fileMetadata struct {
	Hash         string
	LastModified time.Time
}

type CacheEntry struct {
	Metadata fileMetadata
	// OptionsKey identifies the parser options the issues were found with.
	OptionsKey   string
	Issues       []tt.Issue
	CreatedAt    time.Time
	LastAccessed time.Time
}

// Cache keeps the issues found per file on disk. An entry is dropped once
// the file's content or modification time changes, once it was stored
// under different parser options, or once it is older than the max age.
type Cache struct {
	CacheDir string

	fs      afero.Fs
	entries map[string]CacheEntry
	mutex   sync.RWMutex
	maxAge  time.Duration
	now     func() time.Time
}

func NewCache(fs afero.Fs, cacheDir string, maxAge time.Duration) (*Cache, error) {
	if err := fs.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}
	if maxAge <= 0 {
		maxAge = DefaultCacheMaxAge
	}

	cache := &Cache{
		CacheDir: cacheDir,
		fs:       fs,
		entries:  make(map[string]CacheEntry),
		maxAge:   maxAge,
		now:      time.Now,
	}

	if err := cache.load(); err != nil {
		return nil, fmt.Errorf("failed to load cache: %w", err)
	}

	return cache, nil
}

func (c *Cache) load() error {
	file, err := c.fs.Open(filepath.Join(c.CacheDir, cacheFileName))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to open cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewDecoder(file).Decode(&c.entries); err != nil {
		return fmt.Errorf("failed to decode cache file: %w", err)
	}
	return nil
}

func (c *Cache) save() error {
	file, err := c.fs.Create(filepath.Join(c.CacheDir, cacheFileName))
	if err != nil {
		return fmt.Errorf("failed to create cache file: %w", err)
	}
	defer file.Close()

	if err := gob.NewEncoder(file).Encode(c.entries); err != nil {
		return fmt.Errorf("failed to encode cache file: %w", err)
	}
	return nil
}

// Set stores the issues found in filename when parsed with the options
// identified by optionsKey.
func (c *Cache) Set(filename, optionsKey string, issues []tt.Issue) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	metadata, err := c.fileMetadata(filename)
	if err != nil {
		return fmt.Errorf("failed to get file metadata: %w", err)
	}

	now := c.now()
	c.entries[filename] = CacheEntry{
		Metadata:     metadata,
		OptionsKey:   optionsKey,
		Issues:       issues,
		CreatedAt:    now,
		LastAccessed: now,
	}

	return c.save()
}

// Get returns the issues stored for filename under optionsKey.
func (c *Cache) Get(filename, optionsKey string) ([]tt.Issue, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[filename]
	if !exists {
		return nil, false
	}

	if c.isEntryInvalid(filename, optionsKey, entry) {
		delete(c.entries, filename)
		return nil, false
	}

	entry.LastAccessed = c.now()
	c.entries[filename] = entry

	return entry.Issues, true
}

func (c *Cache) isEntryInvalid(filename, optionsKey string, entry CacheEntry) bool {
	if entry.OptionsKey != optionsKey || c.now().Sub(entry.CreatedAt) > c.maxAge {
		return true
	}

	current, err := c.fileMetadata(filename)
	return err != nil || !current.LastModified.Equal(entry.Metadata.LastModified) || current.Hash != entry.Metadata.Hash
}

func (c *Cache) SetMaxAge(duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.maxAge = duration
}

// InvalidateAll drops every entry and rewrites the cache file.
func (c *Cache) InvalidateAll() error {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries = make(map[string]CacheEntry)
	return c.save()
}

func (c *Cache) fileMetadata(filename string) (fileMetadata, error) {
	file, err := c.fs.Open(filename)
	if err != nil {
		return fileMetadata{}, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	hash := md5.New()
	if _, err := io.Copy(hash, file); err != nil {
		return fileMetadata{}, fmt.Errorf("failed to calculate hash: %w", err)
	}

	info, err := file.Stat()
	if err != nil {
		return fileMetadata{}, fmt.Errorf("failed to get file info: %w", err)
	}

	return fileMetadata{
		Hash:         fmt.Sprintf("%x", hash.Sum(nil)),
		LastModified: info.ModTime(),
	}, nil
}
