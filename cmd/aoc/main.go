// Command aoc runs the puzzle solvers against input files.
//
//	aoc list
//	aoc solve 12 --part 1
//	aoc all --input-dir ./inputs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/statespace/config"
	"github.com/katalvlaran/statespace/puzzles"
)

// app carries the state shared by every subcommand of one invocation.
type app struct {
	out io.Writer

	// flags
	configPath string
	inputDir   string
	verbose    bool

	cfg    config.Config
	logger *zap.Logger
	reg    *puzzles.Registry
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "aoc",
		Short: "Solve puzzles with breadth-first state-space search",
		Long: `aoc runs the registered day solvers on puzzle input files.

Inputs are read from <input-dir>/dayNN.txt unless --input is given.
Settings come from a YAML file (--config); flags override it.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "aoc.yaml", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.inputDir, "input-dir", "", "Directory with dayNN.txt inputs (overrides config)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(a.listCmd(), a.solveCmd(), a.allCmd())
	return root
}

// setup loads the configuration, builds the logger and the solver registry.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = a.inputDir
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	if cfg.Log.Development {
		zc = zap.NewDevelopmentConfig()
	}
	lvl, err := cfg.Log.ZapLevel()
	if err != nil {
		return err
	}
	if a.verbose {
		lvl = zapcore.DebugLevel
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	if a.logger, err = zc.Build(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	a.reg = puzzles.Default(
		puzzles.WithLogger(a.logger),
		puzzles.WithSearchLimit(cfg.Search.Limit),
	)
	a.logger.Debug("configured",
		zap.String("config", a.configPath),
		zap.String("input_dir", cfg.InputDir),
		zap.Int("parallel", cfg.Parallel),
		zap.Int("search_limit", cfg.Search.Limit))
	return nil
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
