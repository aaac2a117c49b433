package check

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/gnoswap-labs/gqlfront/internal"
	"github.com/gnoswap-labs/gqlfront/language/parser"
)

// DefaultConfigPath is the configuration file looked up when none is given.
const DefaultConfigPath = ".gqlfront.yaml"

// envPrefix prefixes environment overrides, e.g. GQLFRONT_PARSE_MAX_DEPTH
// or GQLFRONT_IGNORE_PATHS=vendor,testdata.
const envPrefix = "gqlfront"

// Config represents the overall configuration of a check run.
type Config struct {
	Name        string         `yaml:"name"`
	Extensions  []string       `yaml:"extensions" split_words:"true"`
	IgnorePaths []string       `yaml:"ignore_paths" split_words:"true"`
	Parse       parser.Options `yaml:"parse" split_words:"true"`
	Cache       CacheConfig    `yaml:"cache" split_words:"true"`
}

// CacheConfig enables the on-disk result cache when Dir is set.
type CacheConfig struct {
	Dir    string        `yaml:"dir,omitempty" split_words:"true"`
	MaxAge time.Duration `yaml:"max_age,omitempty" split_words:"true"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Name:       "gqlfront",
		Extensions: append([]string(nil), internal.DefaultExtensions...),
		Parse: parser.Options{
			MaxDepth: parser.DefaultMaxDepth,
		},
	}
}

// LoadConfig reads the configuration at path on top of DefaultConfig and
// then applies GQLFRONT_* environment overrides. A missing file is not an
// error; the defaults are used instead.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		f, err := os.Open(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return config, fmt.Errorf("error opening config file: %w", err)
		default:
			defer f.Close()
			if err := yaml.NewDecoder(f).Decode(&config); err != nil && !errors.Is(err, io.EOF) {
				return config, fmt.Errorf("error decoding config file %s: %w", path, err)
			}
		}
	}

	if err := envconfig.Process(envPrefix, &config); err != nil {
		return config, fmt.Errorf("error reading environment: %w", err)
	}
	return config, nil
}

// WriteConfig writes config as YAML to path.
func WriteConfig(path string, config Config) error {
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(path, d, 0o644)
}
