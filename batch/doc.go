// Package batch solves many independent MILP instances concurrently and
// aggregates their minimal integer costs by summation.
//
// Each instance's Branch-and-Bound search is fully self-contained (own
// stack, own cloned systems per node), so the fan-out needs no locks or
// cross-instance coordination: a bounded errgroup writes each result into
// its own slot and the summation happens after the join. The total is
// therefore independent of scheduling order.
//
// An instance with no integer-feasible point contributes zero to the sum;
// that outcome is expected workload behavior, not an error.
package batch
