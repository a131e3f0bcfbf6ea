// Package config loads the huffd service configuration from the
// environment.
package config

import (
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Prefix is prepended to every variable name, so Port is read from
// HUFFD_PORT.
const Prefix = "huffd"

// Config holds the huffd settings.
type Config struct {
	// Port is the TCP port to listen on.  HUFFD_PORT, default 8080.
	Port string `envconfig:"PORT" default:"8080"`

	// MaxBody is the largest request body accepted, in bytes.
	// HUFFD_MAX_BODY, default 32 MiB.
	MaxBody int64 `envconfig:"MAX_BODY" default:"33554432"`

	// DebugLevel is passed to the codec.  HUFFD_DEBUG, default 0.
	DebugLevel int `envconfig:"DEBUG" default:"0"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "config")
	}
	if cfg.MaxBody <= 0 {
		return Config{}, errors.Errorf("HUFFD_MAX_BODY: expected a positive integer, got %d", cfg.MaxBody)
	}
	if cfg.DebugLevel < 0 {
		return Config{}, errors.Errorf("HUFFD_DEBUG: expected a non-negative integer, got %d", cfg.DebugLevel)
	}
	return cfg, nil
}
