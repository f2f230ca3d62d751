package scoring

import "math/rand"

// Option applies a configuration option to the HeuristicScorer.
type Option func(*HeuristicScorer)

// WithJitter enables bounded random variation on the computed score. The
// source is injected so callers control determinism; a nil source or a
// non-positive amplitude leaves jitter disabled.
func WithJitter(source *rand.Rand, amplitude float64) Option {
	return func(s *HeuristicScorer) {
		if source != nil && amplitude > 0 {
			s.jitterSource = source
			s.jitterAmplitude = amplitude
		}
	}
}
