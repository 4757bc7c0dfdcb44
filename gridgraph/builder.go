package gridgraph

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// Builder accumulates obstacles on an initially open grid. The first
// out-of-range call is recorded and reported by Build.
type Builder struct {
	rows, cols int
	blocked    *roaring.Bitmap
	err        error
}

// NewBuilder starts an open rows×cols grid.
func NewBuilder(rows, cols int) *Builder {
	b := &Builder{rows: rows, cols: cols, blocked: roaring.New()}
	if rows <= 0 || cols <= 0 {
		b.err = ErrEmptyGrid
	} else if uint64(rows)*uint64(cols) > 1<<32-1 {
		b.err = ErrGridTooLarge
	}
	return b
}

// Block marks the given cells blocked.
func (b *Builder) Block(cells ...Cell) *Builder {
	for _, c := range cells {
		if !b.check(c) {
			return b
		}
		b.blocked.Add(uint32(c.Row*b.cols + c.Col))
	}
	return b
}

// BlockRow blocks row r from column c0 to c1 inclusive.
func (b *Builder) BlockRow(r, c0, c1 int) *Builder {
	if c0 > c1 {
		c0, c1 = c1, c0
	}
	if !b.check(Cell{r, c0}) || !b.check(Cell{r, c1}) {
		return b
	}
	start := uint64(r*b.cols + c0)
	b.blocked.AddRange(start, start+uint64(c1-c0+1))
	return b
}

// BlockCol blocks column c from row r0 to r1 inclusive.
func (b *Builder) BlockCol(c, r0, r1 int) *Builder {
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	for r := r0; r <= r1; r++ {
		b.Block(Cell{r, c})
	}
	return b
}

// Build returns the immutable Grid or the first recorded error.
func (b *Builder) Build(opts ...Option) (*Grid, error) {
	if b.err != nil {
		return nil, b.err
	}
	return newGrid(b.rows, b.cols, b.blocked.Clone(), opts), nil
}

func (b *Builder) check(c Cell) bool {
	if b.err != nil {
		return false
	}
	if c.Row < 0 || c.Row >= b.rows || c.Col < 0 || c.Col >= b.cols {
		b.err = fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, c, b.rows, b.cols)
		return false
	}
	return true
}
