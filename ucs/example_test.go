package ucs_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/ucs"
)

// ExampleSearch finds the cheapest route through a small road map.
func ExampleSearch() {
	g, _ := core.FromAdjacency(map[string][]core.Arc{
		"A": {{To: "B", Weight: 1}, {To: "C", Weight: 4}},
		"B": {{To: "D", Weight: 1}, {To: "E", Weight: 3}},
		"C": {{To: "F", Weight: 5}},
		"D": {{To: "G", Weight: 2}},
		"E": {{To: "G", Weight: 1}},
		"F": {{To: "G", Weight: 2}},
	})
	res, err := ucs.Search(g, "A", "G")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("path=%v cost=%g\n", res.Path, res.Cost)
	// Output: path=[A B D G] cost=4
}

// ExampleDistances lists single-source costs.
func ExampleDistances() {
	g := core.NewGraph()
	_ = g.AddEdge("hub", "a", 2)
	_ = g.AddEdge("hub", "b", 5)
	_ = g.AddEdge("a", "b", 1)

	dist, prev, _ := ucs.Distances(g, "hub")
	fmt.Println(dist["b"], prev["b"])
	// Output: 3 a
}
