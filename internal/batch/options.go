package batch

import (
	"github.com/okian/gradecast/pkg/logger"
)

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithWorkers sets the number of concurrent prediction workers.
func WithWorkers(count int) Option {
	return func(r *Runner) {
		if count > 0 {
			r.workers = count
		}
	}
}

// WithLimit caps how many records one run processes. Zero means all.
func WithLimit(limit int) Option {
	return func(r *Runner) {
		if limit >= 0 {
			r.limit = limit
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}
