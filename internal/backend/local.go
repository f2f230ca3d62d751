package backend

import (
	"context"

	"github.com/okian/gradecast/internal/domain/model"
	"github.com/okian/gradecast/internal/domain/scoring"
)

// Local implements Backend with the in-process heuristic formula. It never
// fails, which makes it the terminal fallback for every prediction.
type Local struct {
	scorer scoring.Scorer
}

// NewLocal creates a local backend around the given scorer.
func NewLocal(scorer scoring.Scorer) *Local {
	return &Local{scorer: scorer}
}

// Predict computes the performance percentage with the local formula.
func (l *Local) Predict(_ context.Context, rec model.StudentRecord, _ string) (float64, error) {
	return l.scorer.Score(rec), nil
}

// Name identifies the backend variant.
func (l *Local) Name() string { return "local-formula" }
