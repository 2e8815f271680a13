package batch

import (
	"context"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlopt/lp"
	"github.com/katalvlaran/lvlopt/milp"
)

// Options configures the fan-out.
//
// Fields:
//   - Workers — maximum concurrent solves; values < 1 fall back to
//     GOMAXPROCS.
type Options struct {
	Workers int
}

// DefaultOptions sizes the pool to the machine.
func DefaultOptions() Options {
	return Options{Workers: runtime.GOMAXPROCS(0)}
}

// Sum solves every system and returns the sum of minimal integer costs.
//
// Contracts:
//   - systems are treated as immutable; instances are independent.
//   - milp.ErrNoIntegerSolution contributes 0 and is not an error.
//   - ctx cancellation stops scheduling new instances; a solve already
//     running finishes on its own (the search itself has no suspension
//     points, only the pivot iteration cap).
//
// Errors: the first malformed-system error, or ctx.Err() on cancellation.
//
// Complexity: sum of per-instance search costs, spread over Workers.
func Sum(ctx context.Context, systems []*lp.System, opts Options) (int, error) {
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		costs  = make([]int, len(systems)) // one isolated slot per instance
		g, gtx = errgroup.WithContext(ctx)
	)
	g.SetLimit(workers)

	for i, sys := range systems {
		i, sys := i, sys
		g.Go(func() error {
			if err := gtx.Err(); err != nil {
				return err
			}
			res, err := milp.Solve(sys)
			if err != nil {
				if errors.Is(err, milp.ErrNoIntegerSolution) {
					return nil // zero contribution by policy
				}

				return err
			}
			costs[i] = res.Cost

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	var total int
	for _, c := range costs {
		total += c
	}

	return total, nil
}
