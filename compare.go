package jsoncmp

import "time"

// defaultMaxDepth bounds diff recursion. Deep enough for any sane document,
// shallow enough that adversarial nesting fails cleanly instead of blowing
// the stack.
const defaultMaxDepth = 10000

// Stage names one phase of a comparison run, for timing observers
type Stage string

const (
	// StageCount covers both CountLevels invocations
	StageCount = Stage("count")
	// StageDiff covers the lockstep tree diff
	StageDiff = Stage("diff")
	// StageSummarize covers folding the pieces into a Summary
	StageSummarize = Stage("summarize")
)

// StageObserver receives the wall time each pipeline stage took. Observers
// are how callers instrument a run; the package itself keeps no global timing
// or logging state, so the core stays testable without side effects.
type StageObserver func(stage Stage, d time.Duration)

// Config are any possible configuration parameters for a comparison
type Config struct {
	// MaxDepth caps diff recursion depth, exceeding it aborts with ErrMaxDepth
	MaxDepth int
	// Observe, if non-nil, is called with the duration of each stage
	Observe StageObserver
}

// DefaultConfig returns the configuration used when no options are passed
func DefaultConfig() Config {
	return Config{MaxDepth: defaultMaxDepth}
}

// Option is a function that adjusts a config, zero or more Options can be
// passed to Diff & Compare
type Option func(cfg *Config)

// OptionMaxDepth overrides the diff recursion depth limit
func OptionMaxDepth(depth int) Option {
	return func(cfg *Config) {
		cfg.MaxDepth = depth
	}
}

// OptionObserver registers a timing observer for Compare's stages
func OptionObserver(fn StageObserver) Option {
	return func(cfg *Config) {
		cfg.Observe = fn
	}
}

// Compare runs the full pipeline on two parsed documents: count levels of
// each, diff the pair, summarize. The two inputs are read-only throughout &
// the call shares no state with any other, so callers may run comparisons
// concurrently.
func Compare(left, right interface{}, opts ...Option) (*Summary, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	start := time.Now()
	leftLevels := CountLevels(left)
	rightLevels := CountLevels(right)
	cfg.observe(StageCount, start)

	start = time.Now()
	diffs, err := Diff(left, right, OptionMaxDepth(cfg.MaxDepth))
	if err != nil {
		return nil, err
	}
	cfg.observe(StageDiff, start)

	start = time.Now()
	summary, err := Summarize(leftLevels, rightLevels, diffs)
	if err != nil {
		return nil, err
	}
	cfg.observe(StageSummarize, start)

	return summary, nil
}

func (cfg *Config) observe(stage Stage, start time.Time) {
	if cfg.Observe != nil {
		cfg.Observe(stage, time.Since(start))
	}
}
