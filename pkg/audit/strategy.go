package audit

import (
	"context"
	"math/big"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/ecdsa"
)

// Strategy searches a set of records for a nonce relationship that leaks the
// private key.
type Strategy interface {
	// Search returns the first recovered key, or nil when none was found or
	// ctx was cancelled. pub may be nil, in which case results are
	// unverified.
	Search(ctx context.Context, records []Record, pub *ecdsa.PublicKey) *Result

	// Name returns a human-readable name for this strategy.
	Name() string
}

// Pattern is a specific (a, b) relationship to test.
type Pattern struct {
	A        *big.Int
	B        *big.Int
	Name     string
	Priority int // lower is tested first
}

// RangeConfig configures the brute-force phase.
type RangeConfig struct {
	// ARange and BRange are inclusive [min, max] bounds for a and b.
	ARange [2]int
	BRange [2]int

	// MaxPairs limits the number of record pairs tested.
	MaxPairs int

	// NumWorkers controls parallelism. 0 selects runtime.NumCPU().
	NumWorkers int

	// SkipZeroA skips a = 0, which never relates two independent nonces.
	SkipZeroA bool
}

// DefaultRangeConfig returns the configuration that runs the built-in
// expanding range schedule.
func DefaultRangeConfig() RangeConfig {
	return RangeConfig{
		ARange:     [2]int{-100, 100},
		BRange:     [2]int{-100, 100},
		MaxPairs:   100,
		NumWorkers: 0,
		SkipZeroA:  true,
	}
}

// PatternConfig configures the pattern phases.
type PatternConfig struct {
	// CustomPatterns are tested after the common ones and before the range
	// search.
	CustomPatterns []Pattern

	IncludeCommonPatterns bool
}

// DefaultPatternConfig enables the common patterns.
func DefaultPatternConfig() PatternConfig {
	return PatternConfig{
		CustomPatterns:        []Pattern{},
		IncludeCommonPatterns: true,
	}
}

// CommonPatterns returns the built-in relationships, ordered by priority.
func CommonPatterns() []Pattern {
	return []Pattern{
		{big.NewInt(1), big.NewInt(0), "same_nonce", 1},
		{big.NewInt(1), big.NewInt(1), "counter_+1", 2},
		{big.NewInt(1), big.NewInt(-1), "counter_-1", 2},
		{big.NewInt(1), big.NewInt(2), "counter_+2", 3},
		{big.NewInt(1), big.NewInt(-2), "counter_-2", 3},
		{big.NewInt(1), big.NewInt(3), "counter_+3", 3},
		{big.NewInt(1), big.NewInt(-3), "counter_-3", 3},
		{big.NewInt(1), big.NewInt(4), "counter_+4", 3},
		{big.NewInt(1), big.NewInt(-4), "counter_-4", 3},
		{big.NewInt(1), big.NewInt(5), "counter_+5", 3},
		{big.NewInt(1), big.NewInt(-5), "counter_-5", 3},
		{big.NewInt(1), big.NewInt(8), "step_8", 4},
		{big.NewInt(1), big.NewInt(10), "step_10", 4},
		{big.NewInt(1), big.NewInt(16), "step_16", 4},
		{big.NewInt(1), big.NewInt(32), "step_32", 4},
		{big.NewInt(1), big.NewInt(64), "step_64", 4},
		{big.NewInt(1), big.NewInt(100), "step_100", 4},
		{big.NewInt(1), big.NewInt(128), "step_128", 4},
		{big.NewInt(1), big.NewInt(256), "step_256", 4},
		{big.NewInt(1), big.NewInt(512), "step_512", 4},
		{big.NewInt(1), big.NewInt(1000), "step_1000", 4},
		{big.NewInt(1), big.NewInt(1024), "step_1024", 4},
		{big.NewInt(1), big.NewInt(10000), "step_10000", 4},
		{big.NewInt(2), big.NewInt(0), "multiply_2", 5},
		{big.NewInt(2), big.NewInt(1), "multiply_2_+1", 5},
		{big.NewInt(3), big.NewInt(0), "multiply_3", 5},
		{big.NewInt(4), big.NewInt(0), "multiply_4", 5},
		{big.NewInt(-1), big.NewInt(0), "negate", 6},
	}
}
