// Package scanner discovers query documents on disk.
package scanner

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
)

type FileInfo struct {
	Path string
	Size int64
}

type Scanner struct {
	fs         afero.Fs
	rootDir    string
	extensions []string
}

// New returns a Scanner for files under rootDir whose extension is one of
// extensions. With no extensions every file matches.
func New(rootDir string, extensions ...string) *Scanner {
	return &Scanner{
		fs:         afero.NewOsFs(),
		rootDir:    rootDir,
		extensions: extensions,
	}
}

// WithFs makes the scanner walk fs instead of the OS filesystem.
func (s *Scanner) WithFs(fs afero.Fs) *Scanner {
	s.fs = fs
	return s
}

// Scan walks the root directory and returns the matching files sorted by
// path. A root that is itself a matching file yields just that file.
func (s *Scanner) Scan() ([]FileInfo, error) {
	var files []FileInfo
	err := afero.Walk(s.fs, s.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !s.isTargetFile(path) {
			return nil
		}
		files = append(files, FileInfo{
			Path: path,
			Size: info.Size(),
		})
		return nil
	})

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, err
}

func (s *Scanner) isTargetFile(path string) bool {
	if len(s.extensions) == 0 {
		return true
	}

	ext := filepath.Ext(path)
	for _, targetExt := range s.extensions {
		if ext == targetExt {
			return true
		}
	}
	return false
}
