package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the logging configuration. Values come from a YAML file,
// environment variables, or both; environment variables win.
type Config struct {
	// Level is the default minimum severity (trace, debug, info, warn, error)
	Level string `yaml:"level" env:"LAZYLOG_LEVEL" env-default:"info"`

	// Loggers overrides the minimum severity per logger name prefix,
	// e.g. "store.cache: debug"
	Loggers map[string]string `yaml:"loggers"`

	// Format selects the output encoding (text, json)
	Format string `yaml:"format" env:"LAZYLOG_FORMAT" env-default:"text"`

	// Output selects where logs go (stdout, stderr, file)
	Output string `yaml:"output" env:"LAZYLOG_OUTPUT" env-default:"stderr"`

	// FilePath is the log file path (required when output=file)
	FilePath string `yaml:"filePath" env:"LAZYLOG_FILE_PATH"`

	// MaxSize is the maximum log file size in MB before rotation
	MaxSize int `yaml:"maxSize" env:"LAZYLOG_MAX_SIZE" env-default:"100"`

	// MaxBackups is the number of rotated files to keep
	MaxBackups int `yaml:"maxBackups" env:"LAZYLOG_MAX_BACKUPS" env-default:"3"`

	// MaxAge is the maximum age of rotated files in days
	MaxAge int `yaml:"maxAge" env:"LAZYLOG_MAX_AGE" env-default:"7"`

	// Compress enables gzip compression of rotated files
	Compress bool `yaml:"compress" env:"LAZYLOG_COMPRESS"`

	// Async enables a buffered background writer
	Async bool `yaml:"async" env:"LAZYLOG_ASYNC"`

	// BufferSize is the async queue capacity
	BufferSize int `yaml:"bufferSize" env:"LAZYLOG_BUFFER_SIZE" env-default:"1000"`

	// IncludeCaller enables caller information in log output
	IncludeCaller bool `yaml:"includeCaller" env:"LAZYLOG_CALLER"`
}

// Load reads configuration from the given YAML file and then applies
// environment variable overrides.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// FromEnv reads configuration from environment variables only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load for program startup: it prints the error and exits.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lazylog: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// Validate checks fields that cleanenv cannot express as tags.
func (c *Config) Validate() error {
	switch c.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	switch c.Output {
	case "", "stdout", "stderr":
	case "file":
		if c.FilePath == "" {
			return fmt.Errorf("output=file requires filePath")
		}
	default:
		return fmt.Errorf("unknown output %q", c.Output)
	}
	return nil
}
