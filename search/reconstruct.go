package search

import "fmt"

// ParentFunc returns the predecessor of id, or false for the root.
type ParentFunc[N comparable] func(id N) (N, bool)

// Reconstruct walks parent links from goal to the root and returns the path
// in root→goal order.
//
// The walk fails with ErrBrokenChain if it meets an id twice or takes more
// than limit steps (limit <= 0 disables the bound). The engine never builds
// such a chain; the check keeps a corrupted table from looping forever.
func Reconstruct[N comparable](goal N, parent ParentFunc[N], limit int) ([]N, error) {
	path := []N{goal}
	seen := map[N]struct{}{goal: {}}
	for cur := goal; ; {
		prev, ok := parent(cur)
		if !ok {
			break
		}
		if _, dup := seen[prev]; dup {
			return nil, fmt.Errorf("%w: %v revisited", ErrBrokenChain, prev)
		}
		if limit > 0 && len(path) >= limit {
			return nil, fmt.Errorf("%w: longer than %d", ErrBrokenChain, limit)
		}
		seen[prev] = struct{}{}
		path = append(path, prev)
		cur = prev
	}

	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
