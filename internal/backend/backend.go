// Package backend defines the prediction backend capability: the scoring
// strategy in effect for a prediction. Two variants exist, a local formula
// backend and a remote inference endpoint backend; the prediction adapter
// selects between them by configuration and falls back from remote to local
// on any failure.
package backend

import (
	"context"

	"github.com/okian/gradecast/internal/domain/model"
)

// Backend produces a raw performance percentage for a student record. The
// prompt is the human-readable rendering of the record that a hosted model
// would receive; the local variant ignores it.
type Backend interface {
	// Predict returns a performance percentage in [0,100].
	Predict(ctx context.Context, rec model.StudentRecord, prompt string) (float64, error)

	// Name identifies the backend variant for logging.
	Name() string
}
