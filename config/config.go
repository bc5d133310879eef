// SPDX-License-Identifier: MIT

// Package config holds the typed, validated run configuration of the
// spgemmtune driver, loaded from YAML.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spgemmtune/costmodel"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// MatrixSpec describes one generated operand.
type MatrixSpec struct {
	Rows    int64   `yaml:"rows"`
	Cols    int64   `yaml:"cols"`
	Density float64 `yaml:"density"`
	Seed    int64   `yaml:"seed"`
}

// Config is the driver configuration.
type Config struct {
	A MatrixSpec `yaml:"a"`
	B MatrixSpec `yaml:"b"`

	// Permute applies one random symmetric permutation to both operands.
	Permute     bool  `yaml:"permute"`
	PermuteSeed int64 `yaml:"permute_seed"`

	NodeBudget int `yaml:"node_budget"`
	PPN        int `yaml:"ppn"`
	WorldSize  int `yaml:"world_size"`

	Estimator  string `yaml:"estimator"`
	SampleCols int    `yaml:"sample_cols"`
	SampleSeed int64  `yaml:"sample_seed"`

	Platform costmodel.Platform `yaml:"platform"`

	LogLevel string `yaml:"log_level"`
}

// Default returns a small runnable configuration.
func Default() Config {
	return Config{
		A:          MatrixSpec{Rows: 1000, Cols: 1000, Density: 0.01, Seed: 1},
		B:          MatrixSpec{Rows: 1000, Cols: 1000, Density: 0.01, Seed: 2},
		NodeBudget: 4,
		PPN:        4,
		WorldSize:  16,
		Estimator:  costmodel.NameCompression,
		SampleCols: 64,
		SampleSeed: 1,
		Platform:   costmodel.DefaultPlatform(),
		LogLevel:   "info",
	}
}

// Load reads path over Default and validates the result. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: read")
	}
	return Parse(raw)
}

// Parse decodes YAML over Default and validates the result.
func Parse(raw []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "config: decode")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	for name, m := range map[string]MatrixSpec{"a": c.A, "b": c.B} {
		if m.Rows < 1 || m.Cols < 1 {
			return errors.Wrapf(ErrInvalid, "%s: shape %dx%d", name, m.Rows, m.Cols)
		}
		if !(m.Density >= 0 && m.Density <= 1) {
			return errors.Wrapf(ErrInvalid, "%s: density %v", name, m.Density)
		}
	}
	if c.A.Cols != c.B.Rows {
		return errors.Wrapf(ErrInvalid, "inner dimensions %d and %d differ", c.A.Cols, c.B.Rows)
	}
	if c.Permute && (c.A.Rows != c.A.Cols || c.B.Rows != c.B.Cols || c.A.Rows != c.B.Rows) {
		return errors.Wrap(ErrInvalid, "permute needs square operands of equal size")
	}
	if c.NodeBudget < 1 || c.PPN < 1 || c.WorldSize < 1 {
		return errors.Wrapf(ErrInvalid, "node_budget=%d ppn=%d world_size=%d", c.NodeBudget, c.PPN, c.WorldSize)
	}
	if c.SampleCols < 1 {
		return errors.Wrapf(ErrInvalid, "sample_cols=%d", c.SampleCols)
	}
	if err := c.Platform.Validate(); err != nil {
		return errors.Wrapf(ErrInvalid, "platform: %v", err)
	}
	if _, err := costmodel.New(c.Estimator, c.Platform); err != nil {
		return errors.Wrapf(ErrInvalid, "estimator: %v", err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrInvalid, "log_level: %v", err)
	}
	return nil
}

// Level returns the parsed log level; Validate guarantees it parses.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
