package gen

import "math/rand"

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithCount sets how many records to generate.
func WithCount(count int) Option {
	return func(g *Generator) {
		if count > 0 {
			g.count = count
		}
	}
}

// WithSeed replaces the random source with one seeded deterministically.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic seed for reproducible data
	}
}

// WithSource injects a prepared random source directly.
func WithSource(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSubjects overrides the subject catalog behind the average grade.
func WithSubjects(subjects []string) Option {
	return func(g *Generator) {
		if len(subjects) > 0 {
			g.subjects = subjects
		}
	}
}
