// Package config loads the parameters of a curve engine from YAML.
//
// The configuration never contains control points; those belong to the
// host application. Environment variables are applied as read-only
// overrides on top of the file values.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'config'
func tracer() tracing.Trace {
	return tracing.Select("config")
}

// ErrInvalidConfig indicates a configuration value out of range.
var ErrInvalidConfig = errors.New("invalid curve configuration")

// Stop is a gradient key in hex notation.
type Stop struct {
	At    float64 `yaml:"at"`
	Color string  `yaml:"color"`
}

// Curve holds the global parameters of one curve engine.
//
// Density controls the adaptive subdivision: a segment of length d is
// split into ceil(d*Density/10) steps.
type Curve struct {
	Closed     bool   `yaml:"closed"`
	GroundSnap bool   `yaml:"ground_snap"`
	Density    int    `yaml:"density"`
	Gradient   []Stop `yaml:"gradient"`
	TraceLevel string `yaml:"trace_level"` // "debug" | "info" | "error"
}

// Env var names used as overrides.
const (
	EnvClosed     = "WAYPATH_CLOSED"
	EnvGroundSnap = "WAYPATH_GROUND_SNAP"
	EnvDensity    = "WAYPATH_DENSITY"
	EnvTraceLevel = "WAYPATH_TRACE_LEVEL"
)

// Defaults returns an open curve of density 20 with a white gradient.
func Defaults() Curve {
	return Curve{
		Density:    20,
		Gradient:   []Stop{{At: 0, Color: "#ffffff"}, {At: 1, Color: "#ffffff"}},
		TraceLevel: "error",
	}
}

// Parse reads a YAML document on top of the defaults and validates the result.
// Keys missing from the document keep their default values.
func Parse(data []byte) (Curve, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return cfg, cfg.Validate()
}

// Load reads the YAML file at path, if present, then applies environment
// overrides. A missing file yields the defaults.
func Load(path string) (Curve, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if cfg, err = Parse(data); err != nil {
			return cfg, err
		}
	case errors.Is(err, os.ErrNotExist):
		tracer().Infof("no configuration at %s, using defaults", path)
	default:
		return cfg, err
	}
	applyEnvOverrides(&cfg)
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Curve) Validate() error {
	if c.Density < 0 {
		return fmt.Errorf("%w: density %d < 0", ErrInvalidConfig, c.Density)
	}
	for i, s := range c.Gradient {
		if s.At < 0 || s.At > 1 {
			return fmt.Errorf("%w: gradient stop %d at %g outside [0,1]", ErrInvalidConfig, i, s.At)
		}
		if !strings.HasPrefix(s.Color, "#") {
			return fmt.Errorf("%w: gradient stop %d color %q", ErrInvalidConfig, i, s.Color)
		}
	}
	return nil
}

// Level maps TraceLevel to a tracing level, defaulting to errors only.
func (c Curve) Level() tracing.TraceLevel {
	switch strings.ToLower(strings.TrimSpace(c.TraceLevel)) {
	case "debug":
		return tracing.LevelDebug
	case "info":
		return tracing.LevelInfo
	default:
		return tracing.LevelError
	}
}

func applyEnvOverrides(cfg *Curve) {
	if v := strings.TrimSpace(os.Getenv(EnvClosed)); v != "" {
		cfg.Closed = parseBool(v, cfg.Closed)
	}
	if v := strings.TrimSpace(os.Getenv(EnvGroundSnap)); v != "" {
		cfg.GroundSnap = parseBool(v, cfg.GroundSnap)
	}
	if v := strings.TrimSpace(os.Getenv(EnvDensity)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Density = n
		} else {
			tracer().Errorf("ignoring %s=%q: %v", EnvDensity, v, err)
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvTraceLevel)); v != "" {
		cfg.TraceLevel = v
	}
}

func parseBool(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}
