package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/statespace/puzzles"
)

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, day := range a.reg.Days() {
				s, err := a.reg.Get(day)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "day %02d  %s\n", day, s.Title())
			}
			return nil
		},
	}
}

func (a *app) solveCmd() *cobra.Command {
	var (
		part  int
		input string
	)
	cmd := &cobra.Command{
		Use:   "solve DAY",
		Short: "Solve one day",
		Long: `Solves one or both parts of a day.

Example:
  aoc solve 24 --part 2 --input ./valley.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid day %q: %w", args[0], err)
			}
			if part < 0 || part > 2 {
				return fmt.Errorf("%w: got %d", puzzles.ErrBadPart, part)
			}
			s, err := a.reg.Get(day)
			if err != nil {
				return err
			}
			if input == "" {
				input = a.cfg.InputPath(day)
			}
			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Errorf("read input for day %d: %w", day, err)
			}

			parts := []int{1, 2}
			if part != 0 {
				parts = []int{part}
			}
			for _, p := range parts {
				r := a.run(cmd.Context(), s, p, string(data))
				if r.err != nil {
					return fmt.Errorf("day %02d part %d: %w", day, p, r.err)
				}
				r.print(a)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&part, "part", "p", 0, "Part to solve (1 or 2, 0 = both)")
	cmd.Flags().StringVarP(&input, "input", "i", "", "Input file (default: <input-dir>/dayNN.txt)")
	return cmd
}

func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Solve every day that has an input file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.solveAll(cmd.Context())
		},
	}
}

// result is the outcome of one part of one day.
type result struct {
	day, part int
	answer    string
	elapsed   time.Duration
	err       error
}

func (r result) print(a *app) {
	if r.err != nil {
		fmt.Fprintf(a.out, "day %02d part %d: error: %v\n", r.day, r.part, r.err)
		return
	}
	fmt.Fprintf(a.out, "day %02d part %d: %s\n", r.day, r.part, r.answer)
}

func (a *app) run(ctx context.Context, s puzzles.Solver, part int, input string) result {
	start := time.Now()
	answer, err := puzzles.Solve(ctx, s, part, input)
	r := result{day: s.Day(), part: part, answer: answer, elapsed: time.Since(start), err: err}
	a.logger.Info("solved",
		zap.Int("day", r.day),
		zap.Int("part", r.part),
		zap.Duration("elapsed", r.elapsed),
		zap.Error(err))
	return r
}

// solveAll runs every day with an input file, at most cfg.Parallel at once,
// and prints the answers in day order.
func (a *app) solveAll(ctx context.Context) error {
	days := a.reg.Days()
	results := make([][2]result, len(days))
	present := make([]bool, len(days))

	limit := a.cfg.Parallel
	if limit == 0 {
		limit = runtime.NumCPU()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, day := range days {
		g.Go(func() error {
			data, err := os.ReadFile(a.cfg.InputPath(day))
			if errors.Is(err, fs.ErrNotExist) {
				a.logger.Debug("no input", zap.Int("day", day))
				return nil
			}
			if err != nil {
				return fmt.Errorf("read input for day %d: %w", day, err)
			}
			s, err := a.reg.Get(day)
			if err != nil {
				return err
			}
			present[i] = true
			for p := range results[i] {
				results[i][p] = a.run(ctx, s, p+1, string(data))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	solved, failed := 0, 0
	for i := range days {
		if !present[i] {
			continue
		}
		solved++
		for _, r := range results[i] {
			r.print(a)
			if r.err != nil {
				failed++
			}
		}
	}
	if solved == 0 {
		return fmt.Errorf("no inputs found in %s", a.cfg.InputDir)
	}
	if failed > 0 {
		return fmt.Errorf("%d part(s) failed", failed)
	}
	return nil
}
