// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/lvsearch.
package gridgraph

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates an unrecognized cell character in Parse input.
	ErrBadCell = errors.New("gridgraph: unrecognized cell character")
	// ErrGridTooLarge indicates rows×cols exceeds the 32-bit index space.
	ErrGridTooLarge = errors.New("gridgraph: grid exceeds 2^32 cells")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn8 uses 8-directional connectivity (king moves). It is the default.
	Conn8 Connectivity = iota
	// Conn4 uses 4-directional connectivity: down, up, right, left.
	Conn4
)

// String returns "conn8" or "conn4".
func (c Connectivity) String() string {
	if c == Conn4 {
		return "conn4"
	}
	return "conn8"
}

// Cell is a grid coordinate. Row grows downwards, Col grows rightwards.
type Cell struct {
	Row, Col int
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Step is one valid move out of a cell.
type Step struct {
	To   Cell
	Cost float64
}

// offset is a move delta with its precomputed Euclidean length.
type offset struct {
	dr, dc int
	cost   float64
}

// moveOrder fixes the neighbor enumeration: the four orthogonal moves first,
// then the four diagonals. Conn4 uses the first four.
var moveOrder = []offset{
	{1, 0, 1}, {-1, 0, 1}, {0, 1, 1}, {0, -1, 1},
	{1, 1, math.Sqrt2}, {-1, -1, math.Sqrt2}, {1, -1, math.Sqrt2}, {-1, 1, math.Sqrt2},
}

// Option configures a Grid at construction.
type Option func(*Grid)

// WithConnectivity selects Conn4 or Conn8 (default).
func WithConnectivity(c Connectivity) Option {
	return func(g *Grid) { g.conn = c }
}

// Grid is an immutable occupancy grid. All methods are safe for concurrent use.
type Grid struct {
	rows, cols int
	blocked    *roaring.Bitmap
	conn       Connectivity
	offsets    []offset

	labelsOnce sync.Once
	labels     []int32 // component label per cell, -1 for blocked
	fillOrder  []uint32
	nComps     int
}
