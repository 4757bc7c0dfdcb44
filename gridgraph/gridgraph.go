package gridgraph

import (
	"fmt"
	"math"

	"github.com/RoaringBitmap/roaring/v2"
)

// NewGrid constructs a Grid from a non-empty, rectangular matrix where true
// marks a blocked cell. The input is not retained.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrGridTooLarge.
// Complexity: O(R×C).
func NewGrid(blocked [][]bool, opts ...Option) (*Grid, error) {
	rows, cols, err := shape(len(blocked), func(r int) int { return len(blocked[r]) })
	if err != nil {
		return nil, err
	}
	bm := roaring.New()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if blocked[r][c] {
				bm.Add(uint32(r*cols + c))
			}
		}
	}

	return newGrid(rows, cols, bm, opts), nil
}

// FromInts constructs a Grid from an occupancy matrix where 0 is free and any
// other value is blocked.
func FromInts(values [][]int, opts ...Option) (*Grid, error) {
	rows, cols, err := shape(len(values), func(r int) int { return len(values[r]) })
	if err != nil {
		return nil, err
	}
	bm := roaring.New()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if values[r][c] != 0 {
				bm.Add(uint32(r*cols + c))
			}
		}
	}

	return newGrid(rows, cols, bm, opts), nil
}

// Parse constructs a Grid from text rows: '.' is free, '#' is blocked.
// Any other byte fails with ErrBadCell.
func Parse(lines []string, opts ...Option) (*Grid, error) {
	rows, cols, err := shape(len(lines), func(r int) int { return len(lines[r]) })
	if err != nil {
		return nil, err
	}
	bm := roaring.New()
	for r, line := range lines {
		for c := 0; c < cols; c++ {
			switch line[c] {
			case '.':
			case '#':
				bm.Add(uint32(r*cols + c))
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, line[c], r, c)
			}
		}
	}

	return newGrid(rows, cols, bm, opts), nil
}

// shape validates dimensions given a row count and a row-length accessor.
func shape(rows int, rowLen func(int) int) (int, int, error) {
	if rows == 0 || rowLen(0) == 0 {
		return 0, 0, ErrEmptyGrid
	}
	cols := rowLen(0)
	for r := 1; r < rows; r++ {
		if rowLen(r) != cols {
			return 0, 0, ErrNonRectangular
		}
	}
	if uint64(rows)*uint64(cols) > math.MaxUint32 {
		return 0, 0, ErrGridTooLarge
	}

	return rows, cols, nil
}

func newGrid(rows, cols int, blocked *roaring.Bitmap, opts []Option) *Grid {
	g := &Grid{rows: rows, cols: cols, blocked: blocked, conn: Conn8}
	for _, opt := range opts {
		opt(g)
	}
	if g.conn == Conn4 {
		g.offsets = moveOrder[:4]
	} else {
		g.offsets = moveOrder
	}
	blocked.RunOptimize()

	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Connectivity returns the configured neighbor connectivity.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Blocked reports whether c is in bounds and blocked.
func (g *Grid) Blocked(c Cell) bool {
	return g.InBounds(c) && g.blocked.Contains(g.index(c))
}

// Free reports whether c is in bounds and free.
func (g *Grid) Free(c Cell) bool {
	return g.InBounds(c) && !g.blocked.Contains(g.index(c))
}

// BlockedCount returns the number of blocked cells.
func (g *Grid) BlockedCount() int {
	return int(g.blocked.GetCardinality())
}

// Index maps c to its row-major index. ok is false, and the index zero,
// when c is out of bounds.
func (g *Grid) Index(c Cell) (idx uint32, ok bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	return g.index(c), true
}

// CellAt converts a row-major index back to a Cell. idx must be below
// Rows()*Cols().
func (g *Grid) CellAt(idx uint32) Cell {
	return Cell{Row: int(idx) / g.cols, Col: int(idx) % g.cols}
}

func (g *Grid) index(c Cell) uint32 {
	return uint32(c.Row*g.cols + c.Col)
}

// Validate returns ErrOutOfBounds (wrapped with c) if c is outside the grid.
func (g *Grid) Validate(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, g.rows, g.cols)
	}
	return nil
}

// Neighbors returns the valid moves out of c in the fixed move order.
// A move is valid iff its target is in bounds and free; the blocked state of
// c itself is not consulted.
// Complexity: O(d).
func (g *Grid) Neighbors(c Cell) ([]Step, error) {
	if err := g.Validate(c); err != nil {
		return nil, err
	}
	out := make([]Step, 0, len(g.offsets))
	for _, o := range g.offsets {
		n := Cell{Row: c.Row + o.dr, Col: c.Col + o.dc}
		if !g.Free(n) {
			continue
		}
		out = append(out, Step{To: n, Cost: o.cost})
	}

	return out, nil
}

// String renders the grid with '.' for free and '#' for blocked cells.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.blocked.Contains(uint32(r*g.cols + c)) {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}

	return string(buf)
}
