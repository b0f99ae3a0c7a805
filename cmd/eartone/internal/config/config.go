// Package config provides the configuration file of the eartone CLI.
//
// Configuration is stored under os.UserConfigDir()/eartone/, or in the
// directory named by $EARTONE_CONFIG_DIR:
//
//	~/Library/Application Support/eartone/   (macOS)
//	~/.config/eartone/                       (Linux)
//	%AppData%/eartone/                       (Windows)
//
// Layout:
//
//	eartone/
//	├── config.yaml     # output, generate, manifest and serve settings
//	└── manifest/       # badger database of generated files
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/haivivi/eartone/pkg/storage"
)

const (
	// appDir is the directory name under os.UserConfigDir().
	appDir = "eartone"

	// configFile is the YAML file holding Config.
	configFile = "config.yaml"

	// manifestDir holds the badger manifest database.
	manifestDir = "manifest"

	// EnvDir overrides the configuration directory.
	EnvDir = "EARTONE_CONFIG_DIR"
)

// Manifest backends.
const (
	BackendBadger = "badger"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Config is the content of config.yaml.
type Config struct {
	Output   Output   `yaml:"output" json:"output"`
	Generate Generate `yaml:"generate" json:"generate"`
	Manifest Manifest `yaml:"manifest" json:"manifest"`
	Serve    Serve    `yaml:"serve" json:"serve"`

	dir string
}

// Output selects where generated files go. S3 is used when a bucket is set.
type Output struct {
	Dir string           `yaml:"dir" json:"dir"`
	S3  storage.S3Config `yaml:"s3,omitempty" json:"s3,omitempty"`
}

// Generate holds defaults for the generate command.
type Generate struct {
	Workers int `yaml:"workers" json:"workers"`
	// Amplitude overrides the preset's layout amplitude when non-zero.
	Amplitude float64 `yaml:"amplitude,omitempty" json:"amplitude,omitempty"`
	Preset    string  `yaml:"preset,omitempty" json:"preset,omitempty"`
}

// Manifest selects the manifest backend: badger, memory or none.
type Manifest struct {
	Backend string `yaml:"backend" json:"backend"`
}

// Serve holds defaults for the serve command.
type Serve struct {
	Addr string `yaml:"addr" json:"addr"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Output:   Output{Dir: "."},
		Generate: Generate{Workers: 4},
		Manifest: Manifest{Backend: BackendBadger},
		Serve:    Serve{Addr: ":8080"},
	}
}

// DefaultDir returns $EARTONE_CONFIG_DIR, or os.UserConfigDir()/eartone.
func DefaultDir() (string, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return dir, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(base, appDir), nil
}

// Load loads the configuration from the default location.
func Load() (*Config, error) {
	dir, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom loads config.yaml from dir. A missing file yields the defaults;
// keys absent from the file keep their default values.
func LoadFrom(dir string) (*Config, error) {
	cfg := Default()
	cfg.dir = dir

	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if errors.Is(err, os.ErrNotExist) {
		return &cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", filepath.Join(dir, configFile), err)
	}
	return &cfg, nil
}

// Dir returns the configuration directory.
func (c *Config) Dir() string {
	return c.dir
}

// Path returns the path of config.yaml.
func (c *Config) Path() string {
	return filepath.Join(c.dir, configFile)
}

// ManifestDir returns the badger manifest directory.
func (c *Config) ManifestDir() string {
	return filepath.Join(c.dir, manifestDir)
}

// Save writes the configuration to config.yaml.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	// The file may hold S3 credentials.
	if err := os.WriteFile(c.Path(), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", c.Path(), err)
	}
	return nil
}

// Keys lists the dotted keys accepted by Set.
func Keys() []string {
	return []string{
		"output.dir",
		"output.s3.bucket",
		"output.s3.prefix",
		"output.s3.region",
		"output.s3.endpoint",
		"output.s3.access_key",
		"output.s3.secret_key",
		"generate.workers",
		"generate.amplitude",
		"generate.preset",
		"manifest.backend",
		"serve.addr",
	}
}

// Set assigns value to a dotted key such as "generate.workers".
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "output.dir":
		c.Output.Dir = value
	case "output.s3.bucket":
		c.Output.S3.Bucket = value
	case "output.s3.prefix":
		c.Output.S3.Prefix = value
	case "output.s3.region":
		c.Output.S3.Region = value
	case "output.s3.endpoint":
		c.Output.S3.Endpoint = value
	case "output.s3.access_key":
		c.Output.S3.AccessKey = value
	case "output.s3.secret_key":
		c.Output.S3.SecretKey = value
	case "generate.workers":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("generate.workers must be a positive integer, got %q", value)
		}
		c.Generate.Workers = n
	case "generate.amplitude":
		a, err := strconv.ParseFloat(value, 64)
		if err != nil || a <= 0 || a > 1 {
			return fmt.Errorf("generate.amplitude must be in (0, 1], got %q", value)
		}
		c.Generate.Amplitude = a
	case "generate.preset":
		c.Generate.Preset = value
	case "manifest.backend":
		switch value {
		case BackendBadger, BackendMemory, BackendNone:
		default:
			return fmt.Errorf("manifest.backend must be badger, memory or none, got %q", value)
		}
		c.Manifest.Backend = value
	case "serve.addr":
		c.Serve.Addr = value
	default:
		return fmt.Errorf("unknown key %q (known: %s)", key, strings.Join(Keys(), ", "))
	}
	return nil
}
