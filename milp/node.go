package milp

import "math"

// branchNode is one search-tree node: a full per-variable bound snapshot.
// upper uses +Inf for "no bound", keeping copies flat and comparison
// branch-free. Nodes never share slices — the tree is drained out of
// order by a stack, and sibling nodes must not observe each other's
// tightenings.
type branchNode struct {
	lower []float64 // per-variable lower bounds, ≥ 0
	upper []float64 // per-variable upper bounds, +Inf when unbounded
}

// rootNode is the unrestricted starting point: lb = 0, ub = +Inf.
func rootNode(n int) branchNode {
	nd := branchNode{
		lower: make([]float64, n),
		upper: make([]float64, n),
	}
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		nd.upper[i] = inf
	}

	return nd
}

// clone deep-copies the bound vectors.
func (nd branchNode) clone() branchNode {
	cp := branchNode{
		lower: make([]float64, len(nd.lower)),
		upper: make([]float64, len(nd.upper)),
	}
	copy(cp.lower, nd.lower)
	copy(cp.upper, nd.upper)

	return cp
}

// branch splits on variable idx holding fractional value val.
// Left child: x_idx ≤ floor(val), tightening any existing upper bound.
// Right child: x_idx ≥ ceil(val), tightening the lower bound.
// Bounds only ever tighten, so the children's integer regions are
// disjoint and together cover every integer the parent admitted.
func (nd branchNode) branch(idx int, val float64) (left, right branchNode) {
	left = nd.clone()
	left.upper[idx] = math.Min(left.upper[idx], math.Floor(val))

	right = nd.clone()
	right.lower[idx] = math.Max(right.lower[idx], math.Ceil(val))

	return left, right
}
