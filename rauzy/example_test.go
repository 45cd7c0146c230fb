package rauzy_test

import (
	"fmt"

	"github.com/katalvlaran/intex/rauzy"
)

// ExampleNew builds the diagram of a three-letter exchange permutation
// and walks a loop along its edges.
func ExampleNew() {
	d, _ := rauzy.New([]string{"a b c", "c b a"})
	fmt.Println(d)

	p, _ := d.Path(d.Vertices()[0], rauzy.TopRight, rauzy.BottomRight, rauzy.TopRight)
	fmt.Println(p, "loop:", p.IsLoop(), "full:", p.IsFull())

	// Output:
	// Rauzy diagram with 3 permutations
	// t.b.t loop: true full: false
}
