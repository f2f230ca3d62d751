// Package batch runs collections of student records through the prediction
// adapter and aggregates the results.
package batch

import (
	"context"
	"runtime"
	"sync"

	"github.com/okian/gradecast/internal/domain/model"
	"github.com/okian/gradecast/pkg/logger"
	"github.com/okian/gradecast/pkg/metrics"
)

// Predictor abstracts the prediction adapter for the batch runner.
type Predictor interface {
	Predict(ctx context.Context, rec model.StudentRecord) (model.Prediction, error)
}

// Runner processes records in input order. Each record's prediction is
// independent, so the work is fanned out across workers while the output
// slice preserves input order.
type Runner struct {
	predictor Predictor
	workers   int
	limit     int
	logger    logger.Logger
}

// New creates a batch runner around the given predictor.
func New(predictor Predictor, opts ...Option) *Runner {
	r := &Runner{
		predictor: predictor,
		workers:   runtime.NumCPU() * 2,
		limit:     0, // no limit
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = logger.Get().Named("batch")
	}

	return r
}

// indexedResult carries a prediction back to its input position.
type indexedResult struct {
	index int
	pred  model.Prediction
	err   error
}

// Run predicts every record, bounded by the configured limit. A failing
// record is skipped with a warning; it never aborts the batch. The returned
// slice follows input order with failed records removed.
func (r *Runner) Run(ctx context.Context, records []model.StudentRecord) []model.Prediction {
	records = r.bound(ctx, records)
	if len(records) == 0 {
		return nil
	}

	metrics.UpdateBatchSize(len(records))

	jobs := make(chan int)
	results := make(chan indexedResult, len(records))

	workers := r.workers
	if workers > len(records) {
		workers = len(records)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				pred, err := r.predictor.Predict(ctx, records[i])
				results <- indexedResult{index: i, pred: pred, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range records {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Collect into input positions, then compact out the failures.
	ordered := make([]*model.Prediction, len(records))
	for res := range results {
		if res.err != nil {
			metrics.RecordSkippedRecord()
			r.logger.Warn(ctx, "skipping record after prediction failure",
				logger.String("studentID", records[res.index].StudentID),
				logger.Error(res.err),
			)
			continue
		}
		pred := res.pred
		ordered[res.index] = &pred
	}

	out := make([]model.Prediction, 0, len(records))
	for _, pred := range ordered {
		if pred != nil {
			out = append(out, *pred)
		}
	}
	return out
}

// bound applies the limit and drops records whose student id was already
// seen in this batch. The id is the join key; a duplicate would produce
// two result records claiming the same student.
func (r *Runner) bound(ctx context.Context, records []model.StudentRecord) []model.StudentRecord {
	seen := make(map[string]struct{}, len(records))
	out := make([]model.StudentRecord, 0, len(records))

	for _, rec := range records {
		if r.limit > 0 && len(out) >= r.limit {
			break
		}
		if _, dup := seen[rec.StudentID]; dup {
			r.logger.Warn(ctx, "duplicate student id in batch, keeping first occurrence",
				logger.String("studentID", rec.StudentID),
			)
			continue
		}
		seen[rec.StudentID] = struct{}{}
		out = append(out, rec)
	}

	return out
}
