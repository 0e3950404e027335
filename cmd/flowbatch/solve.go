package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/volkyrik/flowbatch/config"
	"github.com/volkyrik/flowbatch/ioformat"
	"github.com/volkyrik/flowbatch/solver"
)

const solveDoc = `solve reads an arcs file and a nodes file and prints the
minimum-cost integer flow under the given batch volume.

The arcs file format is:

  m
  from to cost limit

repeated m times. The nodes file format is:

  k
  vertex production

repeated k times; any vertex in [0, n) not listed defaults to production 0.
`

func newSolveCmd() *cobra.Command {
	var (
		configPath string
		volume     int64
		maxPivots  int
		maxDepth   int
		seed       int64
		logLevel   string
		toStdout   bool
	)

	cmd := &cobra.Command{
		Use:   "solve <edges_file> <nodes_file>",
		Short: "solve a batched min-cost flow instance",
		Long:  solveDoc,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []config.Option{
				config.WithVolume(volume),
				config.WithMaxPrimalPivots(maxPivots),
				config.WithMaxDualPivots(maxPivots),
				config.WithMaxDepth(maxDepth),
				config.WithRandSeed(seed),
				config.WithLogLevel(logLevel),
			}
			if configPath != "" {
				fileOpts, err := config.FromFile(configPath)
				if err != nil {
					return fmt.Errorf("flowbatch: %w", err)
				}
				// File options are applied first, so flags on the
				// command line always win.
				opts = append(fileOpts, opts...)
			}
			cfg := config.Resolve(opts...)

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("flowbatch: %w", err)
			}
			logger := zerolog.New(cmd.ErrOrStderr()).Level(level).With().Timestamp().Logger()

			g, err := ioformat.ReadGraph(args[0], args[1])
			if err != nil {
				return fmt.Errorf("flowbatch: %w", err)
			}

			res, err := solver.Solve(g, solver.FromConfig(cfg, logger))
			if err != nil {
				return fmt.Errorf("flowbatch: %w", err)
			}

			out := cmd.ErrOrStderr()
			if toStdout {
				out = cmd.OutOrStdout()
			}
			return printResult(out, res)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a flowbatch config file")
	cmd.Flags().Int64VarP(&volume, "volume", "V", 1, "batch volume (units per shipment)")
	cmd.Flags().IntVar(&maxPivots, "max-pivots", 0, "cap primal and dual pivots per solve (0 = unbounded)")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "cap branch-and-bound recursion depth (0 = unbounded)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "dual simplex tie-break RNG seed")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().BoolVar(&toStdout, "stdout", false, "print the solution to stdout instead of stderr")

	return cmd
}

func printResult(w io.Writer, res solver.Result) error {
	for i, f := range res.Flow {
		if _, err := fmt.Fprintf(w, "arc %d: flow=%d\n", i, f); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "objective=%d primal_pivots=%d branchbound_nodes=%d\n",
		res.Objective, res.PrimalPivots, res.BranchBNodes)

	return err
}
