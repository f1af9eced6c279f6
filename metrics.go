package wordsplit

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records split activity as Prometheus metrics.
// A nil *Collector records nothing.
type Collector struct {
	splits   prometheus.Counter
	leaves   prometheus.Counter
	merges   prometheus.Counter
	stitches prometheus.Counter
	words    prometheus.Counter
	duration prometheus.Histogram
}

// NewCollector registers the split metrics under namespace on reg.
func NewCollector(namespace string, reg prometheus.Registerer) *Collector {
	f := promauto.With(reg)

	return &Collector{
		splits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "splits_total",
			Help:      "Total number of split calls",
		}),
		leaves: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "leaves_total",
			Help:      "Total number of leaf ranges tokenized",
		}),
		merges: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merges_total",
			Help:      "Total number of adjacent range results merged",
		}),
		stitches: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "stitches_total",
			Help:      "Total number of word fragments joined across a range boundary",
		}),
		words: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "words_total",
			Help:      "Total number of words returned",
		}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "split_duration_seconds",
			Help:      "Split call duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (c *Collector) observeLeaf() {
	if c == nil {
		return
	}
	c.leaves.Inc()
}

// observeMerge must be called before left and right are merged.
func (c *Collector) observeMerge(left, right Tokens) {
	if c == nil {
		return
	}
	c.merges.Inc()
	if len(left) > 0 && len(right) > 0 && left[len(left)-1].openRight() && right[0].openLeft() {
		c.stitches.Inc()
	}
}

func (c *Collector) observeSplit(words int, d time.Duration) {
	if c == nil {
		return
	}
	c.splits.Inc()
	c.words.Add(float64(words))
	c.duration.Observe(d.Seconds())
}
