package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if GRADECAST_CONFIG is set
//  3. env (prefix GRADECAST_)
func Load(ctx context.Context) (*Config, error) {
	_ = ctx

	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("GRADECAST_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: GRADECAST_SOURCE, GRADECAST_ENDPOINT_URL, ...
	// Map env keys like GRADECAST_NUM_STUDENTS -> num_students (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("GRADECAST_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "gradecast_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate enforces the invariants that must hold before a run starts.
// A violation here is the only condition that terminates the process. It is
// exported so the CLI can re-check after applying flag overrides.
func (c *Config) Validate() error {
	switch c.Source {
	case SourceGenerate, SourceCSV:
	default:
		return fmt.Errorf("%w: unknown source %q (use %q or %q)",
			ErrInvalidConfig, c.Source, SourceGenerate, SourceCSV)
	}
	if c.Source == SourceCSV && c.InputFile == "" {
		return fmt.Errorf("%w: source csv requires input_file", ErrInvalidConfig)
	}
	if c.NumStudents < 1 {
		return fmt.Errorf("%w: num_students must be positive", ErrInvalidConfig)
	}
	if c.WorkerCount < 1 {
		return fmt.Errorf("%w: worker_count must be positive", ErrInvalidConfig)
	}
	if c.EndpointTimeoutMS < 1 {
		return fmt.Errorf("%w: endpoint_timeout_ms must be positive", ErrInvalidConfig)
	}
	if c.JitterAmplitude < 0 {
		return fmt.Errorf("%w: jitter_amplitude must not be negative", ErrInvalidConfig)
	}
	return nil
}
