package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlmax/core"
)

// ExampleGraph demonstrates building a small labelled graph and freezing it.
func ExampleGraph() {
	g := core.NewGraph[string]()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")
	_ = g.AddEdge("C", "A")

	fmt.Println("Vertices:", g.Vertices())
	nbs, _ := g.Neighbors("B")
	fmt.Println("Neighbors of B:", nbs)

	v := g.View()
	fmt.Println("Edge A-C in view?", v.HasEdge("A", "C"))

	// Output:
	// Vertices: [A B C]
	// Neighbors of B: [A C]
	// Edge A-C in view? true
}
