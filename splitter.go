package wordsplit

import (
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Splitter splits text into words by tokenizing ranges of it concurrently.
// A Splitter holds no per-call state and may be shared between goroutines.
type Splitter struct {
	opts opts
	log  func(format string, a ...any)
}

// New creates a new [Splitter].
func New(opt ...Opt) *Splitter {
	opts := defaultOpts
	opts.apply(opt)

	sugar := opts.logger.Sugar()

	return &Splitter{
		opts: opts,
		log: func(format string, a ...any) {
			if opts.verbose {
				sugar.Debugf(format, a...)
			}
		},
	}
}

// Split returns the words of text in order of appearance.
// A word is a maximal run of alphabetic characters, see [IsAlphabetic].
func Split(text string, opt ...Opt) []string {
	return New(opt...).Split(text)
}

// Split returns the words of text in order of appearance.
func (s *Splitter) Split(text string) []string {
	start := time.Now()

	buf := []rune(text)
	if len(buf) == 0 {
		return []string{}
	}

	threshold := s.opts.threshold(len(buf))
	s.log("Split enter chars(%d) threshold(%d) parallelism(%d)", len(buf), threshold, s.opts.parallelism)

	if s.opts.plan != nil {
		s.opts.plan(PlanTree(len(buf), threshold))
	}

	c := &call{
		buf:       buf,
		threshold: threshold,
		// the calling goroutine is a worker too
		slots:   semaphore.NewWeighted(int64(s.opts.parallelism - 1)),
		log:     s.log,
		metrics: s.opts.metrics,
	}

	words := c.schedule(Range{0, len(buf) - 1}).close().Words()

	s.opts.metrics.observeSplit(len(words), time.Since(start))
	s.log("Split exit words(%d) took(%s)", len(words), time.Since(start))

	return words
}

// call carries the read-only state of one Split.
type call struct {
	buf       []rune
	threshold int
	slots     *semaphore.Weighted
	log       func(format string, a ...any)
	metrics   *Collector
}

// schedule tokenizes r, halving it until each part is within the threshold.
// The left half runs on another goroutine when a slot is free, the right half
// runs here. Results are always merged left then right.
func (c *call) schedule(r Range) Tokens {
	r.check(len(c.buf))

	if r.End-r.Begin <= c.threshold {
		c.metrics.observeLeaf()
		return tokenizeLeaf(c.buf, r)
	}

	lr, rr := r.halve()

	var (
		left Tokens
		g    errgroup.Group
	)

	if c.slots.TryAcquire(1) {
		c.log("Range%s forked Left%s", r, lr)
		g.Go(func() error {
			defer c.slots.Release(1)
			left = c.schedule(lr)
			return nil
		})
	} else {
		left = c.schedule(lr)
	}

	right := c.schedule(rr)
	_ = g.Wait()

	c.metrics.observeMerge(left, right)

	return merge(left, right)
}
