// Package matrix provides the dense numeric primitives used across lvlopt.
//
// Dense is a concrete, row-major float64 matrix backed by a flat slice —
// cache-friendly and allocation-predictable, which matters because the
// Simplex engine and the Branch-and-Bound relaxation builder clone and
// grow these buffers on every search node.
//
// The package deliberately stays small:
//
//   - Dense     — construction, bounds-checked At/Set, Clone, Grow, MulVec
//   - vector.go — helpers for plain []float64 vectors (CloneVector, Dot,
//     GrowVector)
//
// All mutating operations either succeed completely or return a sentinel
// error (ErrInvalidDimensions, ErrIndexOutOfBounds); no partial writes.
package matrix
