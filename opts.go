package wordsplit

import (
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/exp/constraints"
)

// DefaultMinLeafSize is the smallest leaf, in characters, a derived threshold may produce.
const DefaultMinLeafSize = 1000

type Opt func(*opts)

type opts struct {
	parallelism int
	minLeafSize int
	leafSize    int
	verbose     bool
	logger      *zap.Logger
	metrics     *Collector
	plan        func(*Node)
}

var defaultOpts = opts{
	minLeafSize: DefaultMinLeafSize,
}

func (s *opts) apply(opt []Opt) {
	for _, o := range opt {
		o(s)
	}
	if s.parallelism < 1 {
		s.parallelism = runtime.GOMAXPROCS(0)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
}

// threshold returns the largest End-Begin a leaf range may have for n characters.
func (s *opts) threshold(n int) int {
	if s.leafSize > 0 {
		return s.leafSize - 1
	}
	return atLeast(n/s.parallelism, atLeast(s.minLeafSize, 1)) - 1
}

func atLeast[T constraints.Integer](v, floor T) T {
	if v < floor {
		return floor
	}
	return v
}

// Parallelism sets the desired number of concurrently running leaves.
// It defaults to GOMAXPROCS.
func Parallelism(n int) Opt {
	return func(s *opts) {
		if n > 0 {
			s.parallelism = n
		}
	}
}

// MinLeafSize sets the smallest leaf, in characters, the derived threshold allows.
func MinLeafSize(n int) Opt {
	return func(s *opts) {
		if n > 0 {
			s.minLeafSize = n
		}
	}
}

// LeafSize fixes the leaf length in characters, bypassing the derivation
// from input length and parallelism.
func LeafSize(n int) Opt {
	return func(s *opts) {
		if n > 0 {
			s.leafSize = n
		}
	}
}

func Verbose() Opt {
	return func(s *opts) {
		s.verbose = true
	}
}

func Logger(l *zap.Logger) Opt {
	return func(s *opts) {
		s.logger = l
	}
}

// Metrics records every split on c.
func Metrics(c *Collector) Opt {
	return func(s *opts) {
		s.metrics = c
	}
}

// Plan hands the task tree of each split to f before the split runs.
func Plan(f func(*Node)) Opt {
	return func(s *opts) {
		s.plan = f
	}
}
