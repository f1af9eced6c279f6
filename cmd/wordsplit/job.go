package main

import (
	"context"
	"fmt"
	"io"

	"github.com/lnashier/goarc"
	"github.com/lnashier/wordsplit"
	"github.com/lnashier/wordsplit/help"
	"github.com/lnashier/wordsplit/internal/config"
	"github.com/lnashier/wordsplit/plug"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// job reads one input, splits it and writes the words.
type job struct {
	name    string
	cfg     *config.Config
	logger  *zap.Logger
	out     io.Writer
	count   bool
	draw    string
	metrics bool

	ctx    context.Context
	cancel func()
	words  []string
	err    error
}

// run brings the job up as a service and returns once it is done.
func run(j *job) error {
	j.ctx, j.cancel = context.WithCancel(context.Background())
	defer j.cancel()

	goarc.Up(goarc.ServiceFunc(func(starting bool) error {
		var err error
		if starting {
			err = j.Start()
		} else {
			err = j.Stop()
		}
		j.appendError(err)
		return err
	}))

	return j.err
}

func (j *job) Start() error {
	text, err := plug.ReadFile(j.ctx, j.name)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	opt := append(j.cfg.Opts(), wordsplit.Logger(j.logger))
	if j.metrics {
		opt = append(opt, wordsplit.Metrics(wordsplit.NewCollector("wordsplit", reg)))
	}
	if j.draw != "" {
		opt = append(opt, wordsplit.Plan(func(root *wordsplit.Node) {
			j.appendError(help.Draw(root, j.draw))
		}))
	}

	switch j.cfg.Mode {
	case config.ModeSequential:
		j.words = wordsplit.Sequential(text)
	case config.ModeParallel:
		j.words = wordsplit.New(opt...).Split(text)
	default:
		return fmt.Errorf("%w: %q", wordsplit.ErrUnknownMode, j.cfg.Mode)
	}

	if j.metrics {
		j.logMetrics(reg)
	}

	return j.write()
}

func (j *job) Stop() error {
	j.cancel()
	return nil
}

func (j *job) write() error {
	if j.count {
		_, err := fmt.Fprintln(j.out, len(j.words))
		return err
	}
	for _, w := range j.words {
		if _, err := fmt.Fprintln(j.out, w); err != nil {
			return err
		}
	}
	return nil
}

func (j *job) logMetrics(reg *prometheus.Registry) {
	families, err := reg.Gather()
	if err != nil {
		j.appendError(err)
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				j.logger.Info("metric", zap.String("name", mf.GetName()), zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetHistogram() != nil:
				j.logger.Info("metric", zap.String("name", mf.GetName()),
					zap.Uint64("count", m.GetHistogram().GetSampleCount()),
					zap.Float64("sum", m.GetHistogram().GetSampleSum()))
			}
		}
	}
}

func (j *job) appendError(err error) {
	if err != nil {
		if j.err != nil {
			j.err = fmt.Errorf("%w %w", j.err, err)
		} else {
			j.err = err
		}
	}
}
