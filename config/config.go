package config

import "github.com/rs/zerolog"

// Config holds every knob a solve needs beyond the graph itself.
type Config struct {
	// Volume is V, the batch size used by the batched cost functional.
	Volume int64
	// MaxPrimalPivots and MaxDualPivots cap their respective pivot
	// loops; zero means unbounded.
	MaxPrimalPivots int
	MaxDualPivots   int
	// MaxDepth caps branch-and-bound recursion; zero means unbounded.
	MaxDepth int
	// RandSeed seeds the dual simplex's tie-break RNG.
	RandSeed int64
	// LogLevel is a zerolog level name: "debug", "info", "warn", etc.
	LogLevel string
}

// Option mutates a Config during resolution.
type Option func(*Config)

// Default returns the baseline configuration: volume 1 (no batching),
// unbounded pivots and depth, seed 1, info logging.
func Default() Config {
	return Config{
		Volume:   1,
		RandSeed: 1,
		LogLevel: zerolog.InfoLevel.String(),
	}
}

// Resolve applies opts in order over Default().
func Resolve(opts ...Option) Config {
	c := Default()
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// WithVolume sets the batch size. Panics if v is not positive, since a
// non-positive volume makes the batched objective meaningless —
// option constructors validate eagerly rather than deferring to a
// runtime error deep in branch-and-bound.
func WithVolume(v int64) Option {
	if v <= 0 {
		panic("config: WithVolume(v<=0)")
	}

	return func(c *Config) { c.Volume = v }
}

// WithMaxPrimalPivots caps the primal pivot loop.
func WithMaxPrimalPivots(n int) Option {
	return func(c *Config) { c.MaxPrimalPivots = n }
}

// WithMaxDualPivots caps the dual pivot loop.
func WithMaxDualPivots(n int) Option {
	return func(c *Config) { c.MaxDualPivots = n }
}

// WithMaxDepth caps branch-and-bound recursion depth.
func WithMaxDepth(n int) Option {
	return func(c *Config) { c.MaxDepth = n }
}

// WithRandSeed sets the dual tie-break RNG seed.
func WithRandSeed(seed int64) Option {
	return func(c *Config) { c.RandSeed = seed }
}

// WithLogLevel sets the zerolog level by name. Panics on a name
// zerolog doesn't recognize, for the same eager-validation reason as
// WithVolume.
func WithLogLevel(level string) Option {
	if _, err := zerolog.ParseLevel(level); err != nil {
		panic("config: WithLogLevel: " + err.Error())
	}

	return func(c *Config) { c.LogLevel = level }
}

// FromFile loads flat "key = value" lines from path, one per line,
// blank lines and lines starting with '#' ignored, and returns the
// Options they resolve to. Unknown keys are ignored rather than
// rejected, so a config file can be shared across solver versions that
// add knobs over time.
func FromFile(path string) ([]Option, error) {
	return parseFile(path)
}
