// Package app wires the prediction pipeline together and executes a run:
// load or generate records, predict for one student or a batch, render the
// reports and optionally persist the results.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/okian/gradecast/internal/backend"
	"github.com/okian/gradecast/internal/batch"
	"github.com/okian/gradecast/internal/config"
	"github.com/okian/gradecast/internal/domain/model"
	"github.com/okian/gradecast/internal/domain/scoring"
	"github.com/okian/gradecast/internal/gen"
	"github.com/okian/gradecast/internal/predict"
	"github.com/okian/gradecast/internal/report"
	"github.com/okian/gradecast/internal/store"
	"github.com/okian/gradecast/pkg/logger"
	"github.com/okian/gradecast/pkg/metrics"
)

// HTTP timeouts for the optional metrics listener.
const (
	metricsReadHeaderTimeout = 5 * time.Second
	metricsShutdownTimeout   = 5 * time.Second
)

// Params selects what a single invocation does, as opposed to the ambient
// Config which describes how.
type Params struct {
	// StudentID switches to single-student mode when set.
	StudentID string

	// Save persists results to a JSON file after the run.
	Save bool

	// Out receives the rendered reports. Defaults to os.Stdout.
	Out io.Writer
}

// Run executes one prediction run end to end. Remote and per-record
// failures degrade gracefully inside the pipeline; an error returned here
// means the run could not start at all.
func Run(ctx context.Context, cfg *config.Config, params Params) error {
	log := logger.Get().Named("app")
	out := params.Out
	if out == nil {
		out = os.Stdout
	}

	if cfg.MetricsAddr != "" {
		stopMetrics := serveMetrics(ctx, cfg.MetricsAddr, log)
		defer stopMetrics()
	}

	records, err := loadRecords(ctx, cfg, log)
	if err != nil {
		return err
	}

	predictor := buildPredictor(cfg)

	if params.StudentID != "" {
		return runSingle(ctx, cfg, params, records, predictor, out, log)
	}
	return runBatch(ctx, cfg, params, records, predictor, out, log)
}

// loadRecords sources student records per the configured mode. The mode is
// validated at startup, so an unexpected value here is a programming error.
func loadRecords(ctx context.Context, cfg *config.Config, log logger.Logger) ([]model.StudentRecord, error) {
	switch cfg.Source {
	case config.SourceGenerate:
		log.Info(ctx, "generating student records",
			logger.Int("count", cfg.NumStudents),
			logger.Any("seed", cfg.Seed),
		)
		g := gen.New(gen.WithCount(cfg.NumStudents), gen.WithSeed(cfg.Seed))
		return g.Generate(), nil
	case config.SourceCSV:
		log.Info(ctx, "loading student records", logger.String("file", cfg.InputFile))
		records, err := store.LoadCSV(ctx, cfg.InputFile)
		if err != nil {
			return nil, fmt.Errorf("load student data: %w", err)
		}
		log.Info(ctx, "student records loaded", logger.Int("count", len(records)))
		return records, nil
	default:
		return nil, fmt.Errorf("%w: source %q", config.ErrInvalidConfig, cfg.Source)
	}
}

// buildPredictor assembles the prediction adapter from configuration: the
// local formula scorer (with optional seeded jitter) and, when an endpoint
// is configured, the remote backend in front of it.
func buildPredictor(cfg *config.Config) *predict.Predictor {
	var scorerOpts []scoring.Option
	if cfg.JitterAmplitude > 0 {
		source := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // deterministic seed for reproducible jitter
		scorerOpts = append(scorerOpts, scoring.WithJitter(source, cfg.JitterAmplitude))
	}

	opts := []predict.Option{
		predict.WithScorer(scoring.NewHeuristicScorer(scorerOpts...)),
	}
	if cfg.EndpointURL != "" {
		opts = append(opts, predict.WithRemote(backend.NewRemote(
			cfg.EndpointURL,
			backend.WithTimeout(time.Duration(cfg.EndpointTimeoutMS)*time.Millisecond),
		)))
	}

	return predict.New(opts...)
}

// runSingle predicts for one student id. An unknown id is reported and the
// process ends cleanly; it is a data problem, not an operator mistake.
func runSingle(ctx context.Context, cfg *config.Config, params Params, records []model.StudentRecord, predictor *predict.Predictor, out io.Writer, log logger.Logger) error {
	rec, err := store.LookupStudent(records, params.StudentID)
	if err != nil {
		if errors.Is(err, store.ErrUnknownStudent) {
			log.Warn(ctx, "student not found in loaded records",
				logger.String("studentID", params.StudentID),
			)
			return nil
		}
		return err
	}

	pred, err := predictor.Predict(ctx, rec)
	if err != nil {
		return fmt.Errorf("predict %s: %w", rec.StudentID, err)
	}

	report.RenderPrediction(out, pred)

	if params.Save {
		if _, err := store.SaveResults(ctx, []model.Prediction{pred}, cfg.OutputFile); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
	}
	return nil
}

// runBatch predicts for the whole record set, renders per-student reports
// and the aggregate summary.
func runBatch(ctx context.Context, cfg *config.Config, params Params, records []model.StudentRecord, predictor *predict.Predictor, out io.Writer, log logger.Logger) error {
	runID := uuid.New().String()
	log.Info(ctx, "starting batch prediction",
		logger.String("runID", runID),
		logger.Int("records", len(records)),
		logger.Int("workers", cfg.WorkerCount),
		logger.Int("limit", cfg.BatchLimit),
	)

	runner := batch.New(predictor,
		batch.WithWorkers(cfg.WorkerCount),
		batch.WithLimit(cfg.BatchLimit),
	)
	results := runner.Run(ctx, records)

	for _, pred := range results {
		report.RenderPrediction(out, pred)
	}

	summary := batch.Summarize(runID, results, cfg.TopRecommendations)
	report.RenderSummary(out, summary)

	log.Info(ctx, "batch prediction finished",
		logger.String("runID", runID),
		logger.Int("results", len(results)),
		logger.Int("skipped", len(records)-len(results)),
	)

	if params.Save {
		if _, err := store.SaveResults(ctx, results, cfg.OutputFile); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
	}
	return nil
}

// serveMetrics exposes the Prometheus registry while the run is in flight.
func serveMetrics(ctx context.Context, addr string, log logger.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: metricsReadHeaderTimeout,
	}

	go func() {
		log.Info(ctx, "metrics listener started", logger.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Warn(ctx, "metrics listener failed", logger.Error(err))
		}
	}()

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}
