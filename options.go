package morphodrill

import "log/slog"

// Default escape thresholds for RandomForm. Tight AllowedValues combined with
// a high unit ceiling can need more attempts; raise them with options.
const (
	DefaultFilterEscape = 2000
	DefaultMaxAttempts  = 4000
)

// Option customizes a Sampler.
type Option func(*Sampler)

// WithRand sets the random source. Panics on nil.
func WithRand(r Rand) Option {
	if r == nil {
		panic("morphodrill: WithRand(nil)")
	}
	return func(s *Sampler) { s.rng = r }
}

// WithSeed uses a deterministic source seeded with seed.
func WithSeed(seed uint64) Option {
	return func(s *Sampler) { s.rng = NewSeededRand(seed) }
}

// WithFilterEscape sets how many rejections RandomForm tolerates before it
// stops honoring the seen set. Panics if n < 0.
func WithFilterEscape(n int) Option {
	if n < 0 {
		panic("morphodrill: WithFilterEscape(n < 0)")
	}
	return func(s *Sampler) { s.filterEscape = n }
}

// WithMaxAttempts sets how many rejections RandomForm tolerates before it
// gives up and returns its last candidate. Panics if n < 1.
func WithMaxAttempts(n int) Option {
	if n < 1 {
		panic("morphodrill: WithMaxAttempts(n < 1)")
	}
	return func(s *Sampler) { s.maxAttempts = n }
}

// WithLogger makes the sampler log every rejection at debug level.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("morphodrill: WithLogger(nil)")
	}
	return func(s *Sampler) { s.log = l }
}
