// Package gridgraph models a 2D occupancy grid as a search space.
//
// What:
//
//   - Grid is an immutable rows×cols matrix of free/blocked cells. Blocked
//     cells are stored as a roaring bitmap of row-major indices, so sparse
//     obstacle maps stay small and membership tests stay O(1)-ish.
//   - Neighbors(c) yields the moves out of c: the 8 king moves under Conn8
//     (the default) or the 4 orthogonal moves under Conn4. A move is valid iff
//     the target is in bounds and free. Its cost is the Euclidean distance
//     between cell centers: 1 orthogonally, √2 diagonally.
//   - Components()/SameComponent() label the connected regions of free cells
//     under the grid's connectivity.
//
// Known looseness:
//
//   - Diagonal moves are allowed between two blocked orthogonal cells
//     ("corner cutting"). A path may therefore squeeze through a diagonal gap
//     in a wall. This is the established behavior of the grid model and is
//     kept as is.
//   - The source cell of a move is not checked: a blocked cell still has free
//     neighbors, so a search may start on a blocked cell. A blocked cell is
//     never entered, so it can only be a goal when it is also the start.
//
// Construction:
//
//   - NewGrid([][]bool)   true = blocked.
//   - FromInts([][]int)   non-zero = blocked (the usual 0/1 occupancy matrix).
//   - Parse([]string)     '.' free, '#' blocked.
//   - NewBuilder(r, c)    open grid plus Block/BlockRow/BlockCol, then Build.
//
// Complexity:
//
//   - Neighbors:  O(d), d = 4 or 8.
//   - Components: O(R×C×d) once, cached.
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadCell:        unknown character in Parse input.
//   - ErrGridTooLarge:   more cells than a 32-bit index can address.
//   - ErrOutOfBounds:    a cell outside [0,rows)×[0,cols).
package gridgraph
