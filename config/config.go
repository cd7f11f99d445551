// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"gopkg.in/yaml.v2"

	"github.com/daring5920/eosabi/trace"
)

const (
	DefaultExpirationSeconds = 30
	DefaultInitialCapacity   = 512
	DefaultCompression       = "none"
	DefaultLogLevel          = "info"
)

// Config holds the transaction header defaults applied by a builder.
type Config struct {
	// ExpirationSeconds is added to the reference time to produce the
	// transaction expiration.
	ExpirationSeconds uint32 `json:"expirationSeconds" yaml:"expirationSeconds"`

	// Resource limits. Zero lets the node apply its own maximum.
	MaxNetUsageWords uint32 `json:"maxNetUsageWords" yaml:"maxNetUsageWords"`
	MaxCPUUsageMs    uint8  `json:"maxCpuUsageMs" yaml:"maxCpuUsageMs"`
	DelaySec         uint32 `json:"delaySec" yaml:"delaySec"`

	// Compression is "none" or "zlib".
	Compression string `json:"compression" yaml:"compression"`

	// InitialCapacity sizes the write buffer of each transaction.
	InitialCapacity int `json:"initialCapacity" yaml:"initialCapacity"`

	LogLevel string       `json:"logLevel" yaml:"logLevel"`
	Trace    trace.Config `json:"trace" yaml:"trace"`
}

func defaults() *Config {
	return &Config{
		ExpirationSeconds: DefaultExpirationSeconds,
		Compression:       DefaultCompression,
		InitialCapacity:   DefaultInitialCapacity,
		LogLevel:          DefaultLogLevel,
		Trace:             trace.Config{AppName: "eosabi"},
	}
}

// New parses a JSON config. Missing fields keep their defaults.
func New(b []byte) (*Config, error) {
	c := defaults()
	if len(b) > 0 {
		if err := json.Unmarshal(b, c); err != nil {
			return nil, err
		}
	}
	return c, c.Verify()
}

// Load reads a config file. Files ending in .yaml or .yml are parsed as
// YAML, everything else as JSON.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		c := defaults()
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, err
		}
		return c, c.Verify()
	default:
		return New(b)
	}
}

// Verify rejects values a builder could never use.
func (c *Config) Verify() error {
	if c.ExpirationSeconds == 0 {
		return ErrZeroExpiration
	}
	if c.Compression != "none" && c.Compression != "zlib" {
		return fmt.Errorf("%w: %q", ErrUnknownCompression, c.Compression)
	}
	if c.InitialCapacity < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCapacity, c.InitialCapacity)
	}
	if _, err := logging.ToLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func (c *Config) GetLogLevel() logging.Level {
	level, err := logging.ToLevel(c.LogLevel)
	if err != nil {
		return logging.Info
	}
	return level
}

// NewLogger returns a plain-text logger writing to [w] at the configured
// level. The logger never closes [w].
func (c *Config) NewLogger(w io.Writer) logging.Logger {
	return logging.NewLogger(
		"eosabi",
		logging.NewWrappedCore(c.GetLogLevel(), nopCloser{w}, logging.Plain.ConsoleEncoder()),
	)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}
