// Property-based checks of the branching step: the two children must
// partition the parent's integer range exactly — no integer lost, none
// double-counted.
package milp

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestBranch_PartitionsParentIntegers(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)
	properties.Property("left ∪ right covers, left ∩ right empty", prop.ForAll(
		func(lb, width, offset int) bool {
			// Parent range [lb, lb+width]; fractional point strictly inside.
			ub := lb + width
			v := float64(lb+offset%width) + 0.5 // never integral

			nd := rootNode(1)
			nd.lower[0] = float64(lb)
			nd.upper[0] = float64(ub)
			left, right := nd.branch(0, v)

			for z := lb; z <= ub; z++ {
				inLeft := float64(z) >= left.lower[0] && float64(z) <= left.upper[0]
				inRight := float64(z) >= right.lower[0] && float64(z) <= right.upper[0]
				if inLeft == inRight {
					return false // either lost or double-counted
				}
			}

			return true
		},
		gen.IntRange(0, 50),
		gen.IntRange(1, 20),
		gen.IntRange(0, 19),
	))

	properties.Property("children only tighten bounds", prop.ForAll(
		func(lb, width, offset int) bool {
			ub := lb + width
			v := float64(lb+offset%width) + 0.5

			nd := rootNode(1)
			nd.lower[0] = float64(lb)
			nd.upper[0] = float64(ub)
			left, right := nd.branch(0, v)

			return left.lower[0] >= nd.lower[0] && left.upper[0] <= nd.upper[0] &&
				right.lower[0] >= nd.lower[0] && right.upper[0] <= nd.upper[0] &&
				left.upper[0] == math.Floor(v) && right.lower[0] == math.Ceil(v)
		},
		gen.IntRange(0, 50),
		gen.IntRange(1, 20),
		gen.IntRange(0, 19),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
