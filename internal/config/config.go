// Package config defines process configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"runtime"
)

// Data source modes accepted by Source.
const (
	SourceGenerate = "generate"
	SourceCSV      = "csv"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Source selects where student records come from: generate or csv.
	Source string `koanf:"source"`

	// InputFile is the CSV file path when Source is csv.
	InputFile string `koanf:"input_file"`

	// NumStudents sets how many synthetic records to generate.
	NumStudents int `koanf:"num_students"`

	// Seed drives the synthetic generator and optional scoring jitter.
	Seed int64 `koanf:"seed"`

	// EndpointURL points at a hosted inference endpoint. Empty means the
	// local formula is used for every prediction.
	EndpointURL string `koanf:"endpoint_url"`

	// EndpointTimeoutMS bounds a single remote call.
	EndpointTimeoutMS int `koanf:"endpoint_timeout_ms"`

	// WorkerCount sets the number of concurrent batch workers.
	WorkerCount int `koanf:"worker_count"`

	// BatchLimit caps how many records a batch run processes. Zero means
	// all loaded records.
	BatchLimit int `koanf:"batch_limit"`

	// JitterAmplitude bounds the optional scoring jitter. Zero disables it.
	JitterAmplitude float64 `koanf:"jitter_amplitude"`

	// TopRecommendations caps the recommendation frequency list in the
	// batch summary.
	TopRecommendations int `koanf:"top_recommendations"`

	// OutputFile overrides the timestamped default results filename.
	OutputFile string `koanf:"output_file"`

	// MetricsAddr exposes Prometheus metrics while a run is in flight,
	// e.g. ":9090". Empty disables the listener.
	MetricsAddr string `koanf:"metrics_addr"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Source:             SourceGenerate,
		NumStudents:        20,
		Seed:               42,
		EndpointTimeoutMS:  30_000,
		WorkerCount:        runtime.NumCPU() * 2,
		BatchLimit:         0,
		JitterAmplitude:    0,
		TopRecommendations: 5,
	}
}
