package predict

import (
	"time"

	"github.com/okian/gradecast/internal/backend"
	"github.com/okian/gradecast/internal/domain/scoring"
	"github.com/okian/gradecast/pkg/logger"
)

// Option applies a configuration option to the Predictor.
type Option func(*Predictor)

// WithRemote configures a remote backend. Remote failures fall back to the
// local formula; they never propagate to the caller.
func WithRemote(remote backend.Backend) Option {
	return func(p *Predictor) {
		p.remote = remote
	}
}

// WithScorer replaces the scorer behind the local formula backend.
func WithScorer(scorer scoring.Scorer) Option {
	return func(p *Predictor) {
		if scorer != nil {
			p.local = backend.NewLocal(scorer)
		}
	}
}

// WithLogger sets a custom logger for the predictor.
func WithLogger(l logger.Logger) Option {
	return func(p *Predictor) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithNow replaces the timestamp source for deterministic tests.
func WithNow(now func() time.Time) Option {
	return func(p *Predictor) {
		if now != nil {
			p.now = now
		}
	}
}
