package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/gradecast/internal/app"
	"github.com/okian/gradecast/internal/config"
	"github.com/okian/gradecast/pkg/logger"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Flags override file/env configuration for this invocation.
	var (
		students    = flag.Int("students", cfg.NumStudents, "Number of synthetic student records to generate")
		studentID   = flag.String("student-id", "", "Predict for a single student id instead of the whole batch")
		inputFile   = flag.String("input", cfg.InputFile, "CSV file with student records (switches source to csv)")
		limit       = flag.Int("limit", cfg.BatchLimit, "Maximum records processed in one batch run (0 = all)")
		workers     = flag.Int("workers", cfg.WorkerCount, "Number of concurrent prediction workers")
		endpoint    = flag.String("endpoint", cfg.EndpointURL, "Hosted inference endpoint URL (empty = local formula)")
		seed        = flag.Int64("seed", cfg.Seed, "Random seed for data generation and jitter")
		jitter      = flag.Float64("jitter", cfg.JitterAmplitude, "Scoring jitter amplitude (0 = deterministic)")
		save        = flag.Bool("save", false, "Save prediction results to a JSON file")
		output      = flag.String("output", cfg.OutputFile, "Results file (default: student_predictions_TIMESTAMP.json)")
		metricsAddr = flag.String("metrics-addr", cfg.MetricsAddr, "Expose Prometheus metrics on this address while running")
		logLevel    = flag.String("log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	)
	flag.Parse()

	cfg.NumStudents = *students
	cfg.BatchLimit = *limit
	cfg.WorkerCount = *workers
	cfg.EndpointURL = *endpoint
	cfg.Seed = *seed
	cfg.JitterAmplitude = *jitter
	cfg.OutputFile = *output
	cfg.MetricsAddr = *metricsAddr
	cfg.LogLevel = *logLevel
	if *inputFile != "" {
		cfg.Source = config.SourceCSV
		cfg.InputFile = *inputFile
	}

	// Re-check invariants after flag overrides. Invalid configuration is
	// the one error class that terminates the process.
	if err := cfg.Validate(); err != nil {
		os.Stderr.WriteString("invalid configuration: " + err.Error() + "\n")
		os.Exit(1)
	}

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(ctx, "invalid log level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	params := app.Params{
		StudentID: *studentID,
		Save:      *save,
	}

	if err := app.Run(ctx, cfg, params); err != nil {
		os.Stderr.WriteString("run failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
