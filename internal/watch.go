package internal

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	tt "github.com/gnoswap-labs/gqlfront/internal/types"
)

// settle is how long a written file is left alone before it is checked,
// so that a burst of writes is handled once.
const settle = 100 * time.Millisecond

var (
	errAlreadyWatching = errors.New("already watching")
	errWatchNeedsOsFs  = errors.New("watching requires the OS filesystem")
)

// StartWatching checks query documents under dirs each time one is
// written and hands the result to onResult. It returns once the watches
// are in place; call StopWatching to end it. Change notifications come
// from the operating system, so the engine must read from afero's OsFs.
func (e *Engine) StartWatching(dirs []string, onResult func(filename string, issues []tt.Issue)) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.watching {
		return errAlreadyWatching
	}
	if _, ok := e.fs.(*afero.OsFs); !ok {
		return errWatchNeedsOsFs
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}

	for _, dir := range dirs {
		err := afero.Walk(e.fs, dir, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if info.IsDir() {
				return watcher.Add(path)
			}
			return nil
		})
		if err != nil {
			watcher.Close()
			return fmt.Errorf("error adding directory to watcher: %w", err)
		}
	}

	e.watcher = watcher
	e.onResult = onResult
	e.watching = true

	go e.watchLoop(watcher)
	return nil
}

// StopWatching ends a watch started by StartWatching.
func (e *Engine) StopWatching() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.watching {
		e.logger.Debug("Not watching")
		return nil
	}

	e.watching = false
	return e.watcher.Close()
}

func (e *Engine) watchLoop(watcher *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			e.handleFileEvent(event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			e.logger.Error("Watch error", zap.Error(err))
		}
	}
}

func (e *Engine) handleFileEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	if event.Has(fsnotify.Create) {
		if info, err := e.fs.Stat(event.Name); err == nil && info.IsDir() {
			e.mu.RLock()
			watcher := e.watcher
			e.mu.RUnlock()
			if watcher != nil {
				if err := watcher.Add(event.Name); err != nil {
					e.logger.Warn("Failed to watch new directory", zap.String("dir", event.Name), zap.Error(err))
				}
			}
			return
		}
	}

	if !e.HasExtension(event.Name) || e.IsIgnored(event.Name) {
		return
	}

	time.Sleep(settle)
	issues, err := e.Run(event.Name)
	if err != nil {
		e.logger.Error("Error checking file", zap.String("file", event.Name), zap.Error(err))
		return
	}
	e.reportIssues(event.Name, issues)
}

func (e *Engine) reportIssues(filename string, issues []tt.Issue) {
	if len(issues) == 0 {
		e.logger.Info("No issues found", zap.String("file", filename))
	} else {
		e.logger.Info("Found issues", zap.String("file", filename), zap.Int("count", len(issues)))
		for _, issue := range issues {
			e.logger.Info(issue.Message, zap.String("rule", issue.Rule), zap.Stringer("position", issue.Start))
		}
	}

	e.mu.RLock()
	onResult := e.onResult
	e.mu.RUnlock()
	if onResult != nil {
		onResult(filename, issues)
	}
}
