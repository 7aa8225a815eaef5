// Package config provides configuration management for the gleaner
// harvester. It handles loading and validating application settings from
// YAML configuration files and provides sensible defaults while allowing
// for customization through configuration files and CLI flags.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/glorpus-work/gleaner/pkg/errors"
)

// Default configuration values.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 5 * time.Minute

	// DefaultUserAgent identifies the harvester to remote archives.
	DefaultUserAgent = "gleaner/1.0"

	// StagingDirName is the directory next to the base directory that holds
	// dataset configs and in-flight downloads.
	StagingDirName = "harvester_files"
)

// Config represents the application configuration.
type Config struct {
	Settings Settings `yaml:"settings"`
}

// AWSConfig holds credentials and endpoint settings for the S3 mirror.
type AWSConfig struct {
	// Profile selects a shared-config credentials profile.
	Profile string `yaml:"profile,omitempty"`

	// Region is the AWS region.
	Region string `yaml:"region,omitempty"`

	// Endpoint overrides the default S3 endpoint.
	Endpoint string `yaml:"endpoint,omitempty"`

	// UsePathStyle forces path-style addressing.
	UsePathStyle bool `yaml:"use_path_style,omitempty"`

	AccessKeyID     string `yaml:"access_key_id,omitempty"`
	SecretAccessKey string `yaml:"secret_access_key,omitempty"`
	SessionToken    string `yaml:"session_token,omitempty"`
}

// Settings represents general application settings.
type Settings struct {
	// BaseDir is the root of the local archive tree. Usually given per run
	// on the command line.
	BaseDir string `yaml:"base_dir,omitempty"`

	// RemoteBasePath is the S3 base path granules are mirrored to
	// ("s3://bucket/prefix"). Empty disables the mirror.
	RemoteBasePath string `yaml:"remote_base_path,omitempty"`

	// Network settings
	HTTPTimeout time.Duration `yaml:"http_timeout"`
	UserAgent   string        `yaml:"user_agent,omitempty"`

	// Output settings
	LogLevel string `yaml:"log_level"` // error, warn, info, debug

	AWS AWSConfig `yaml:"aws,omitempty"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			HTTPTimeout: DefaultHTTPTimeout,
			UserAgent:   DefaultUserAgent,
			LogLevel:    "info",
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the
// defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config path %s", path)
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.Settings.HTTPTimeout == 0 {
		c.Settings.HTTPTimeout = DefaultHTTPTimeout
	}
	if c.Settings.UserAgent == "" {
		c.Settings.UserAgent = DefaultUserAgent
	}
	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = "info"
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	switch strings.ToLower(c.Settings.LogLevel) {
	case "error", "warn", "warning", "info", "debug":
	default:
		return errors.Wrapf(errors.ErrConfigValidation, "unknown log level %q", c.Settings.LogLevel)
	}
	if c.Settings.HTTPTimeout < 0 {
		return errors.Wrap(errors.ErrConfigValidation, "http_timeout must not be negative")
	}
	if rp := c.Settings.RemoteBasePath; rp != "" && !strings.HasPrefix(rp, "s3://") {
		return errors.Wrapf(errors.ErrConfigValidation, "remote_base_path %q must be an s3:// path", rp)
	}
	return nil
}

// StagingDir derives the staging directory for a base directory: a sibling
// tree under harvester_files named after the base directory. Dataset
// configs live there too, keeping the archive tree itself free of
// harvester bookkeeping.
func StagingDir(baseDir string) string {
	base := filepath.Clean(baseDir)
	return filepath.Join(filepath.Dir(base), StagingDirName, filepath.Base(base))
}

// DatasetConfigPath returns the expected dataset config location for a
// base directory.
func DatasetConfigPath(baseDir string) string {
	return filepath.Join(StagingDir(baseDir), "dataset.yaml")
}
