package main

import (
	"io"

	"github.com/lnashier/wordsplit/internal/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCommand(out io.Writer) *cobra.Command {
	var (
		configPath  string
		parallelism int
		leafSize    int
		minLeafSize int
		mode        string
		count       bool
		draw        string
		metrics     bool
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:   "wordsplit [file|-]",
		Short: "Split text into words",
		Long: "Split text into words, one per line. A word is a maximal run of alphabetic characters.\n" +
			"Text is read from the named file, or from standard input when the name is - or missing.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().WithConfigPath(configPath).Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("parallelism") {
				cfg.Parallelism = parallelism
			}
			if flags.Changed("leaf-size") {
				cfg.LeafSize = leafSize
			}
			if flags.Changed("min-leaf-size") {
				cfg.MinLeafSize = minLeafSize
			}
			if flags.Changed("mode") {
				cfg.Mode = mode
			}
			if flags.Changed("verbose") {
				cfg.Verbose = verbose
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			name := "-"
			if len(args) > 0 {
				name = args[0]
			}

			return run(&job{
				name:    name,
				cfg:     cfg,
				logger:  logger,
				out:     out,
				count:   count,
				draw:    draw,
				metrics: metrics,
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "YAML config file")
	flags.IntVar(&parallelism, "parallelism", 0, "desired number of concurrent leaves (0 means GOMAXPROCS)")
	flags.IntVar(&leafSize, "leaf-size", 0, "fixed leaf length in characters (0 derives it)")
	flags.IntVar(&minLeafSize, "min-leaf-size", 0, "smallest derived leaf length in characters")
	flags.StringVar(&mode, "mode", config.ModeParallel, "parallel or sequential")
	flags.BoolVar(&count, "count", false, "print the number of words instead of the words")
	flags.StringVar(&draw, "draw", "", "write the split task tree as DOT to this file")
	flags.BoolVar(&metrics, "metrics", false, "log split metrics when done")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log split progress")

	return cmd
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Verbose {
		zcfg = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	if !cfg.Verbose {
		zcfg.Level = level
	}
	zcfg.OutputPaths = []string{"stderr"}
	return zcfg.Build()
}
