// Package predict assembles full prediction results: it selects the backend
// in effect, recovers from remote failures by falling back to the local
// formula, and attaches confidence, factors and recommendations.
package predict

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/okian/gradecast/internal/backend"
	"github.com/okian/gradecast/internal/domain/confidence"
	"github.com/okian/gradecast/internal/domain/insight"
	"github.com/okian/gradecast/internal/domain/model"
	"github.com/okian/gradecast/internal/domain/scoring"
	"github.com/okian/gradecast/pkg/logger"
	"github.com/okian/gradecast/pkg/metrics"
)

// Predictor orchestrates a single prediction. A remote failure is never
// fatal: the caller always receives a well-formed Prediction, degraded to
// the local formula and annotated with the error.
type Predictor struct {
	local  *backend.Local
	remote backend.Backend
	logger logger.Logger
	now    func() time.Time
}

// New constructs a Predictor. Without options it uses a deterministic
// local formula backend and no remote endpoint.
func New(opts ...Option) *Predictor {
	p := &Predictor{
		local: backend.NewLocal(scoring.NewHeuristicScorer()),
		now:   time.Now,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = logger.Get().Named("predict")
	}

	return p
}

// Predict produces a Prediction for the record. The only error condition
// is context cancellation; every backend failure degrades gracefully.
func (p *Predictor) Predict(ctx context.Context, rec model.StudentRecord) (model.Prediction, error) {
	if err := ctx.Err(); err != nil {
		return model.Prediction{}, fmt.Errorf("prediction cancelled: %w", err)
	}

	start := time.Now()
	defer func() {
		metrics.RecordPredictionLatency(float64(time.Since(start).Milliseconds()))
	}()

	prompt := BuildPrompt(rec)

	var errAnnotation string
	score, err := p.backendScore(ctx, rec, prompt)
	if err != nil {
		// Remote path failed; recover with the local formula and keep the
		// cause on the result for visibility.
		metrics.RecordRemoteFailure()
		metrics.RecordFallback()
		p.logger.Warn(ctx, "remote prediction failed, falling back to local formula",
			logger.String("studentID", rec.StudentID),
			logger.Error(err),
		)
		errAnnotation = err.Error()
		score, _ = p.local.Predict(ctx, rec, prompt)
	}

	score = normalizeScore(score)
	metrics.RecordPrediction()

	return model.Prediction{
		StudentID:       rec.StudentID,
		StudentName:     rec.Name,
		Performance:     score,
		Confidence:      confidence.Estimate(rec),
		Factors:         insight.Factors(rec),
		Recommendations: insight.Recommendations(rec, score),
		Prompt:          prompt,
		Error:           errAnnotation,
		Timestamp:       p.now().UTC(),
	}, nil
}

// backendScore consults the remote backend when one is configured and the
// local formula otherwise.
func (p *Predictor) backendScore(ctx context.Context, rec model.StudentRecord, prompt string) (float64, error) {
	if p.remote != nil {
		return p.remote.Predict(ctx, rec, prompt)
	}
	return p.local.Predict(ctx, rec, prompt)
}

// normalizeScore clamps to [0,100] and rounds to one decimal. Remote
// endpoints may return free-form values outside the domain.
func normalizeScore(score float64) float64 {
	score = math.Round(score*10) / 10
	return math.Max(0, math.Min(100, score))
}
