// Command lvlopt reads machine descriptions and prints the aggregate
// minimum number of button presses across all instances.
//
// Usage:
//
//	lvlopt solve input.txt
//	cat input.txt | lvlopt solve
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlopt/batch"
	"github.com/katalvlaran/lvlopt/machine"
	"github.com/katalvlaran/lvlopt/milp"
)

var (
	flagWorkers int
	flagVerbose bool
)

func main() {
	root := &cobra.Command{
		Use:           "lvlopt",
		Short:         "exact MILP solving for button/target machines",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	solve := &cobra.Command{
		Use:   "solve [file]",
		Short: "solve every machine in the input and print the total presses",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSolve,
	}
	solve.Flags().IntVar(&flagWorkers, "workers", 0, "max concurrent solves (0 = GOMAXPROCS)")
	solve.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "per-instance debug logging")
	root.AddCommand(solve)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	log := newLogger(flagVerbose)

	in, name, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	systems, err := machine.Parse(in)
	if err != nil {
		return err
	}
	log.Debug().Int("instances", len(systems)).Str("input", name).Msg("parsed")

	if flagVerbose {
		// Sequential pass with per-instance detail; slower but traceable.
		var total int
		for i, sys := range systems {
			res, serr := milp.Solve(sys)
			if errors.Is(serr, milp.ErrNoIntegerSolution) {
				log.Debug().Int("instance", i).Msg("no integer solution")
				continue
			}
			if serr != nil {
				return serr
			}
			log.Debug().Int("instance", i).Int("cost", res.Cost).Msg("solved")
			total += res.Cost
		}
		fmt.Fprintln(cmd.OutOrStdout(), total)

		return nil
	}

	opts := batch.DefaultOptions()
	if flagWorkers > 0 {
		opts.Workers = flagWorkers
	}
	start := time.Now()
	total, err := batch.Sum(cmd.Context(), systems, opts)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Msg("done")
	fmt.Fprintln(cmd.OutOrStdout(), total)

	return nil
}

// newLogger builds a console zerolog logger on stderr; quiet by default.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// openInput returns the named file, or stdin when no argument was given.
func openInput(args []string) (io.ReadCloser, string, error) {
	if len(args) == 0 {
		return io.NopCloser(os.Stdin), "stdin", nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, "", err
	}

	return f, args[0], nil
}
