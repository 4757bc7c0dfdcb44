package astar

import (
	"math"

	"github.com/katalvlaran/lvsearch/gridgraph"
)

// Euclidean is the straight-line distance between cell centers.
func Euclidean(a, b gridgraph.Cell) float64 {
	return math.Hypot(float64(a.Row-b.Row), float64(a.Col-b.Col))
}

// Octile is the cost of the cheapest 8-connected walk on an empty grid:
// min(dr,dc) diagonal steps plus |dr-dc| straight ones.
func Octile(a, b gridgraph.Cell) float64 {
	dr, dc := absInt(a.Row-b.Row), absInt(a.Col-b.Col)
	lo, hi := dr, dc
	if lo > hi {
		lo, hi = hi, lo
	}
	return float64(lo)*math.Sqrt2 + float64(hi-lo)
}

// Manhattan is |dr|+|dc|. Admissible only under gridgraph.Conn4.
func Manhattan(a, b gridgraph.Cell) float64 {
	return float64(absInt(a.Row-b.Row) + absInt(a.Col-b.Col))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
