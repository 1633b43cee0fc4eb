// Package config loads the settings of the watcher service from YAML.
package config

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/xitonix/xgrid/obfuscate"
	"gopkg.in/yaml.v3"
)

const (
	// ModeEncrypt turns every new file into an envelope
	ModeEncrypt = "encrypt"
	// ModeDecrypt turns envelopes back into plain files
	ModeDecrypt = "decrypt"

	// WatcherPolling polls the source directory
	WatcherPolling = "polling"
	// WatcherNotify subscribes to the filesystem events of the source directory
	WatcherNotify = "notify"
)

// ErrInvalidConfig raised if the configuration cannot be used to run the watcher
var ErrInvalidConfig = errors.New("invalid configuration")

// Config the watcher settings
type Config struct {
	Source          string        `yaml:"source"`
	Target          string        `yaml:"target"`
	Mode            string        `yaml:"mode"`
	Watcher         string        `yaml:"watcher"`
	PollingInterval time.Duration `yaml:"polling_interval"`
	SettleDelay     time.Duration `yaml:"settle_delay"`
	Workers         uint16        `yaml:"workers"`
	DeleteCompleted bool          `yaml:"delete_completed"`
	LogLevel        string        `yaml:"log_level"`
}

// Default returns the configuration every loaded file gets applied on top of.
func Default() *Config {
	return &Config{
		Mode:            ModeEncrypt,
		Watcher:         WatcherPolling,
		PollingInterval: time.Second,
		SettleDelay:     2 * time.Second,
		Workers:         4,
		LogLevel:        "info",
	}
}

// Load reads and validates the configuration file
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open the config file '%s'", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes the YAML configuration on top of the defaults and validates the result.
// Unknown fields are rejected.
func Parse(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && err != io.EOF {
		return nil, errors.Wrapf(ErrInvalidConfig, "%s", err)
	}
	c.Mode = strings.ToLower(strings.TrimSpace(c.Mode))
	c.Watcher = strings.ToLower(strings.TrimSpace(c.Watcher))
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that the configuration is complete and consistent
func (c *Config) Validate() error {
	switch {
	case strings.TrimSpace(c.Source) == "":
		return errors.Wrap(ErrInvalidConfig, "source directory is required")
	case strings.TrimSpace(c.Target) == "":
		return errors.Wrap(ErrInvalidConfig, "target directory is required")
	case c.Mode != ModeEncrypt && c.Mode != ModeDecrypt:
		return errors.Wrapf(ErrInvalidConfig, "unknown mode '%s'", c.Mode)
	case c.Watcher != WatcherPolling && c.Watcher != WatcherNotify:
		return errors.Wrapf(ErrInvalidConfig, "unknown watcher '%s'", c.Watcher)
	case c.PollingInterval <= 0:
		return errors.Wrap(ErrInvalidConfig, "polling interval must be positive")
	case c.SettleDelay < 0:
		return errors.Wrap(ErrInvalidConfig, "settle delay cannot be negative")
	case c.Workers == 0:
		return errors.Wrap(ErrInvalidConfig, "at least one worker is required")
	}
	return nil
}

// Operation returns the engine operation of the configured mode
func (c *Config) Operation() obfuscate.Operation {
	if c.Mode == ModeDecrypt {
		return obfuscate.Decode
	}
	return obfuscate.Encode
}
