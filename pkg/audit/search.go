package audit

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/curve"
	"github.com/mahdiidarabi/ecdsa-weierstrass/pkg/ecdsa"
)

// progressEvery is how often, in tested combinations, the range search logs.
const progressEvery = 10000

type searchRange struct {
	aRange [2]int
	bRange [2]int
	name   string
}

var defaultSchedule = []searchRange{
	{[2]int{1, 1}, [2]int{-100, 100}, "a=1, small b"},
	{[2]int{1, 1}, [2]int{-1000, 1000}, "a=1, medium b"},
	{[2]int{1, 1}, [2]int{-10000, 10000}, "a=1, larger b"},
	{[2]int{2, 4}, [2]int{-1000, 1000}, "small a, medium b"},
	{[2]int{-5, -1}, [2]int{-1000, 1000}, "negative a, medium b"},
	{[2]int{1, 10}, [2]int{-50000, 50000}, "wider a, larger b"},
}

// SmartSearch is a multi-phase Strategy: nonce reuse first, then common and
// custom patterns, then a parallel range search.
type SmartSearch struct {
	RangeConfig   RangeConfig
	PatternConfig PatternConfig

	curve  *curve.Curve
	logger *zap.Logger
}

// NewSmartSearch returns a search over c with default settings and a no-op
// logger.
func NewSmartSearch(c *curve.Curve) *SmartSearch {
	return &SmartSearch{
		RangeConfig:   DefaultRangeConfig(),
		PatternConfig: DefaultPatternConfig(),
		curve:         c,
		logger:        zap.NewNop(),
	}
}

// WithRangeConfig sets the range configuration.
func (s *SmartSearch) WithRangeConfig(config RangeConfig) *SmartSearch {
	s.RangeConfig = config
	return s
}

// WithPatternConfig sets the pattern configuration.
func (s *SmartSearch) WithPatternConfig(config PatternConfig) *SmartSearch {
	s.PatternConfig = config
	return s
}

// WithLogger sets the logger used to report search progress.
func (s *SmartSearch) WithLogger(logger *zap.Logger) *SmartSearch {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
	return s
}

// Name returns the name of this strategy.
func (s *SmartSearch) Name() string {
	return "SmartSearch"
}

// Search implements Strategy.
func (s *SmartSearch) Search(ctx context.Context, records []Record, pub *ecdsa.PublicKey) *Result {
	if len(records) < 2 {
		return nil
	}

	log := s.logger.With(zap.String("curve", s.curve.Name()), zap.Int("records", len(records)))
	log.Info("starting nonce audit", zap.Bool("public_key", pub != nil))

	if result := s.checkSameNonceReuse(records, pub); result != nil {
		log.Info("found nonce reuse", zap.Ints("pair", result.RecordPair[:]))
		return result
	}
	log.Debug("no nonce reuse")

	if s.PatternConfig.IncludeCommonPatterns {
		if result := s.tryPatterns(ctx, records, pub, CommonPatterns()); result != nil {
			log.Info("found common pattern", zap.String("pattern", result.Pattern))
			return result
		}
		log.Debug("no common pattern matched")
	}

	if len(s.PatternConfig.CustomPatterns) > 0 {
		custom := append([]Pattern(nil), s.PatternConfig.CustomPatterns...)
		sort.SliceStable(custom, func(i, j int) bool {
			return custom[i].Priority < custom[j].Priority
		})
		if result := s.tryPatterns(ctx, records, pub, custom); result != nil {
			log.Info("found custom pattern", zap.String("pattern", result.Pattern))
			return result
		}
		log.Debug("no custom pattern matched", zap.Int("patterns", len(custom)))
	}

	return s.adaptiveRangeSearch(ctx, records, pub, log)
}

// candidate turns a recovered scalar into a Result, or nil when it is out
// of range or unconfirmed. With a public key the scalar must match it;
// without one it must explain both records of the pair.
func (s *SmartSearch) candidate(priv *big.Int, records []Record, pub *ecdsa.PublicKey, a, b *big.Int, i, j int, pattern string) *Result {
	if priv.Sign() <= 0 || priv.Cmp(s.curve.Order()) >= 0 {
		return nil
	}

	verified := false
	if pub != nil {
		if !KeyMatches(s.curve, priv, pub) {
			return nil
		}
		verified = true
	} else if !RecordConfirms(s.curve, priv, records[i]) || !RecordConfirms(s.curve, priv, records[j]) {
		return nil
	}

	return &Result{
		PrivateKey:   priv,
		Relationship: Relationship{A: a, B: b},
		RecordPair:   [2]int{i, j},
		Verified:     verified,
		Pattern:      pattern,
	}
}

// checkSameNonceReuse looks for records sharing r.
func (s *SmartSearch) checkSameNonceReuse(records []Record, pub *ecdsa.PublicKey) *Result {
	a, b := big.NewInt(1), big.NewInt(0)
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			if records[i].R == nil || records[j].R == nil || records[i].R.Cmp(records[j].R) != 0 {
				continue
			}

			priv, err := RecoverPrivateKey(records[i], records[j], a, b, s.curve.Order())
			if err != nil {
				continue
			}
			if result := s.candidate(priv, records, pub, a, b, i, j, "same_nonce_reuse"); result != nil {
				return result
			}
		}
	}
	return nil
}

func (s *SmartSearch) tryPatterns(ctx context.Context, records []Record, pub *ecdsa.PublicKey, patterns []Pattern) *Result {
	for _, pattern := range patterns {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if result := s.tryPattern(records, pub, pattern.A, pattern.B, pattern.Name); result != nil {
			return result
		}
	}
	return nil
}

// tryPattern tries one (a, b) across all record pairs.
func (s *SmartSearch) tryPattern(records []Record, pub *ecdsa.PublicKey, a, b *big.Int, name string) *Result {
	for i := 0; i < len(records); i++ {
		for j := i + 1; j < len(records); j++ {
			priv, err := RecoverPrivateKey(records[i], records[j], a, b, s.curve.Order())
			if err != nil {
				continue
			}
			if result := s.candidate(priv, records, pub, a, b, i, j, name); result != nil {
				return result
			}
		}
	}
	return nil
}

func (s *SmartSearch) adaptiveRangeSearch(ctx context.Context, records []Record, pub *ecdsa.PublicKey, log *zap.Logger) *Result {
	schedule := defaultSchedule
	def := DefaultRangeConfig()
	if s.RangeConfig.ARange != def.ARange || s.RangeConfig.BRange != def.BRange {
		schedule = []searchRange{{s.RangeConfig.ARange, s.RangeConfig.BRange, "custom range"}}
	}

	for _, r := range schedule {
		select {
		case <-ctx.Done():
			log.Info("nonce audit cancelled", zap.Error(ctx.Err()))
			return nil
		default:
		}

		log.Debug("range search",
			zap.String("phase", r.name),
			zap.Ints("a", r.aRange[:]),
			zap.Ints("b", r.bRange[:]),
		)

		if result := s.rangeSearch(ctx, records, pub, r.aRange, r.bRange, log); result != nil {
			log.Info("found relationship", zap.String("phase", r.name), zap.String("pattern", result.Pattern))
			return result
		}
	}

	log.Info("nonce audit finished without recovering a key")
	return nil
}

// rangeSearch fans record pairs out to a worker pool; each worker walks the
// whole (a, b) grid for its pair.
func (s *SmartSearch) rangeSearch(ctx context.Context, records []Record, pub *ecdsa.PublicKey, aRange, bRange [2]int, log *zap.Logger) *Result {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	numWorkers := s.RangeConfig.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	maxPairs := s.RangeConfig.MaxPairs
	if maxPairs <= 0 {
		maxPairs = DefaultRangeConfig().MaxPairs
	}

	var tested int64
	resultChan := make(chan *Result, 1)
	workChan := make(chan [2]int, numWorkers*100)

	go func() {
		defer close(workChan)
		pairCount := 0
		for i := 0; i < len(records) && pairCount < maxPairs; i++ {
			for j := i + 1; j < len(records) && pairCount < maxPairs; j++ {
				select {
				case <-ctx.Done():
					return
				case workChan <- [2]int{i, j}:
					pairCount++
				}
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for pair := range workChan {
				if result := s.searchPair(ctx, records, pub, pair, aRange, bRange, &tested, log); result != nil {
					select {
					case resultChan <- result:
						cancel()
					default:
					}
					return
				}
			}
		}()
	}

	wg.Wait()
	log.Debug("range search done", zap.Int64("combinations", atomic.LoadInt64(&tested)))

	select {
	case result := <-resultChan:
		return result
	default:
		return nil
	}
}

func (s *SmartSearch) searchPair(ctx context.Context, records []Record, pub *ecdsa.PublicKey, pair [2]int, aRange, bRange [2]int, tested *int64, log *zap.Logger) *Result {
	i, j := pair[0], pair[1]
	n := s.curve.Order()

	for a := aRange[0]; a <= aRange[1]; a++ {
		if s.RangeConfig.SkipZeroA && a == 0 {
			continue
		}
		for b := bRange[0]; b <= bRange[1]; b++ {
			if ctx.Err() != nil {
				return nil
			}
			if combs := atomic.AddInt64(tested, 1); combs%progressEvery == 0 {
				log.Debug("range search progress", zap.Int64("combinations", combs))
			}

			aBig, bBig := big.NewInt(int64(a)), big.NewInt(int64(b))
			priv, err := RecoverPrivateKey(records[i], records[j], aBig, bBig, n)
			if err != nil {
				continue
			}
			if result := s.candidate(priv, records, pub, aBig, bBig, i, j, fmt.Sprintf("brute_force_a%d_b%d", a, b)); result != nil {
				return result
			}
		}
	}
	return nil
}
