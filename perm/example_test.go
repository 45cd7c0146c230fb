package perm_test

import (
	"fmt"

	"github.com/katalvlaran/intex/perm"
)

// ExampleExchange demonstrates building a labelled exchange permutation
// from a two-line string and applying one Rauzy induction step.
func ExampleExchange() {
	p, _ := perm.Exchange("a b c\nc b a")
	fmt.Println(p)
	fmt.Println("* * *")

	q, _ := p.RauzyMove(perm.Top)
	fmt.Println(q)

	// Output:
	// a b c
	// c b a
	// * * *
	// a b c
	// c a b
}

// ExampleGeneralized demonstrates a linear involution: letters reappear
// twice across the two rows.
func ExampleGeneralized() {
	p, _ := perm.Generalized([]string{"a b b", "c c a"})
	fmt.Println(p)

	// Output:
	// a b b
	// c c a
}

// ExampleIterate lists all irreducible permutations of three intervals.
func ExampleIterate() {
	seq, _ := perm.Iterate(perm.Size(3))
	for p := range seq {
		fmt.Println(p)
		fmt.Println("* * *")
	}

	// Output:
	// 1 2 3
	// 2 3 1
	// * * *
	// 1 2 3
	// 3 1 2
	// * * *
	// 1 2 3
	// 3 2 1
	// * * *
}
