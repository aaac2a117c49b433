// Package check runs the parser over query documents on disk or in memory
// and collects the syntax errors it finds as issues.
package check

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gnoswap-labs/gqlfront/internal"
	tt "github.com/gnoswap-labs/gqlfront/internal/types"
	"github.com/gnoswap-labs/gqlfront/scanner"
)

// ProgressOutput receives the progress bar drawn while a directory is
// processed. It is discarded unless the caller sets it.
var ProgressOutput io.Writer = io.Discard

type Engine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(name string, source []byte) ([]tt.Issue, error)
	IgnorePath(path string)
	IsIgnored(path string) bool
	HasExtension(path string) bool
	Extensions() []string
	Fs() afero.Fs
}

// Processor checks one file with an engine.
type Processor func(Engine, string) ([]tt.Issue, error)

// Source is a named in-memory document.
type Source struct {
	Name string
	Body []byte
}

// New builds an engine from the configuration at configurationPath.
// Relative cache directories are resolved against rootDir.
func New(rootDir string, configurationPath string, options ...internal.Option) (*internal.Engine, error) {
	config, err := LoadConfig(configurationPath)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(rootDir, config, options...)
}

// NewFromConfig builds an engine from an already loaded configuration.
func NewFromConfig(rootDir string, config Config, options ...internal.Option) (*internal.Engine, error) {
	options = append([]internal.Option{internal.WithExtensions(config.Extensions...)}, options...)
	engine, err := internal.NewEngine(config.Parse, options...)
	if err != nil {
		return nil, err
	}

	for _, path := range config.IgnorePaths {
		engine.IgnorePath(path)
	}

	if config.Cache.Dir != "" {
		dir := config.Cache.Dir
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(rootDir, dir)
		}
		cache, err := internal.NewCache(engine.Fs(), dir, config.Cache.MaxAge)
		if err != nil {
			return nil, err
		}
		engine.UseCache(cache)
	}
	return engine, nil
}

func ProcessSources(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	sources []Source,
) ([]tt.Issue, error) {
	logger = orNop(logger)

	var allIssues []tt.Issue
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return allIssues, err
		}
		issues, err := ProcessSource(engine, src.Name, src.Body)
		if err != nil {
			logger.Error("Error processing source", zap.String("source", src.Name), zap.Error(err))
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

// ProcessFiles processes every path in turn. Failures on individual files
// do not stop the run; they are returned together once all paths are done.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	paths []string,
	processor Processor,
) ([]tt.Issue, error) {
	logger = orNop(logger)

	var (
		allIssues []tt.Issue
		result    *multierror.Error
	)
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, processor)
		allIssues = append(allIssues, issues...)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return allIssues, ctxErr
		}
		if err != nil {
			logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			result = multierror.Append(result, err)
		}
	}

	sortIssues(allIssues)
	return allIssues, result.ErrorOrNil()
}

// ProcessPath processes a single file, or every query document below a
// directory on a bounded pool of workers.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine Engine,
	path string,
	processor Processor,
) ([]tt.Issue, error) {
	logger = orNop(logger)

	info, err := engine.Fs().Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !engine.HasExtension(path) {
			logger.Debug("Skipping file with unknown extension", zap.String("file", path))
			return nil, nil
		}
		return processor(engine, path)
	}

	found, err := scanner.New(path, engine.Extensions()...).WithFs(engine.Fs()).Scan()
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}

	files := make([]string, 0, len(found))
	for _, f := range found {
		if engine.IsIgnored(f.Path) {
			continue
		}
		files = append(files, f.Path)
	}

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetWriter(ProgressOutput),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))
	defer bar.Finish()

	var (
		mu     sync.Mutex
		issues = []tt.Issue{}
		result *multierror.Error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, filePath := range files {
		if gctx.Err() != nil {
			break
		}
		fp := filePath
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			fileIssues, err := processor(engine, fp)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				result = multierror.Append(result, fmt.Errorf("%s: %w", fp, err))
			} else {
				issues = append(issues, fileIssues...)
			}
			_ = bar.Add(1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return issues, err
	}
	if err := ctx.Err(); err != nil {
		return issues, err
	}

	sortIssues(issues)
	return issues, result.ErrorOrNil()
}

func ProcessFile(engine Engine, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

func ProcessSource(engine Engine, name string, source []byte) ([]tt.Issue, error) {
	return engine.RunSource(name, source)
}

func sortIssues(issues []tt.Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		a, b := issues[i], issues[j]
		if a.Filename != b.Filename {
			return a.Filename < b.Filename
		}
		if a.Start.Line != b.Start.Line {
			return a.Start.Line < b.Start.Line
		}
		return a.Start.Column < b.Start.Column
	})
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
