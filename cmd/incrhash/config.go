package main

import (
	"github.com/pkg/errors"
	"github.com/takakv/incrhash/digest"
	"gopkg.in/yaml.v2"
	"os"
	"runtime"
)

const (
	defaultAlgorithm = "blake2b-512"
	defaultLogLevel  = "*:INFO"
)

// Config specifies the file format of config files.
type Config struct {
	Algorithm string `yaml:"algorithm"`
	// Database is the LevelDB directory holding stored sets. When empty,
	// sets only live for the duration of one command.
	Database string `yaml:"database"`
	Workers  int    `yaml:"workers"`
	LogLevel string `yaml:"log-level"`
}

// ReadConfig reads and validates the config in filename. An empty filename
// yields the defaults.
func ReadConfig(filename string) (*Config, error) {
	config := &Config{}
	if filename != "" {
		raw, err := os.ReadFile(filename)
		if err != nil {
			return nil, errors.Wrap(err, "reading config")
		}
		if err := yaml.UnmarshalStrict(raw, config); err != nil {
			return nil, errors.Wrapf(err, "parsing config %s", filename)
		}
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Algorithm == "" {
		c.Algorithm = defaultAlgorithm
	}
	if _, err := digest.Lookup(c.Algorithm); err != nil {
		return errors.Wrapf(err, "config: algorithm must be one of %v", digest.Names())
	}
	if c.Workers < 0 {
		return errors.Errorf("config: workers must not be negative, got %d", c.Workers)
	} else if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	return nil
}
