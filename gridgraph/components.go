package gridgraph

// Components returns the connected regions of free cells under the grid's
// connectivity. Each component is a slice of row-major indices in flood-fill
// order; components are ordered by their first cell in row-major order.
//
// Use CellAt to convert an index back to a Cell.
//
// Time:   O(R·C·d) on first call, then O(R·C) to materialize.
// Memory: O(R·C) for the cached labels and output.
func (g *Grid) Components() [][]uint32 {
	g.label()
	comps := make([][]uint32, g.nComps)
	for _, idx := range g.fillOrder {
		l := g.labels[idx]
		comps[l] = append(comps[l], idx)
	}
	return comps
}

// SameComponent reports whether a and b are free cells in the same
// connected region, i.e. whether a path between them exists.
func (g *Grid) SameComponent(a, b Cell) bool {
	if !g.Free(a) || !g.Free(b) {
		return false
	}
	g.label()
	return g.labels[g.index(a)] == g.labels[g.index(b)]
}

// label computes component labels once. Moves between free cells are
// symmetric under both connectivities, so flood fill is exact.
func (g *Grid) label() {
	g.labelsOnce.Do(func() {
		total := g.rows * g.cols
		g.labels = make([]int32, total)
		for i := range g.labels {
			g.labels[i] = -1
		}
		g.fillOrder = make([]uint32, 0, total-g.BlockedCount())
		for i0 := 0; i0 < total; i0++ {
			if g.labels[i0] != -1 || g.blocked.Contains(uint32(i0)) {
				continue
			}
			id := int32(g.nComps)
			g.nComps++
			g.labels[i0] = id
			start := len(g.fillOrder)
			g.fillOrder = append(g.fillOrder, uint32(i0))
			for qi := start; qi < len(g.fillOrder); qi++ {
				u := g.CellAt(g.fillOrder[qi])
				for _, o := range g.offsets {
					v := Cell{Row: u.Row + o.dr, Col: u.Col + o.dc}
					if !g.Free(v) {
						continue
					}
					vi := g.index(v)
					if g.labels[vi] == -1 {
						g.labels[vi] = id
						g.fillOrder = append(g.fillOrder, vi)
					}
				}
			}
		}
	})
}
