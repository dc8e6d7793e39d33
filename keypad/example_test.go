package keypad_test

import (
	"fmt"

	"github.com/katalvlaran/keypress/keypad"
)

// ExampleFromRows builds the directional keypad from its text layout and
// walks from the confirm key to the left arrow.
func ExampleFromRows() {
	g, err := keypad.FromRows("directional", []string{
		" ^A",
		"<v>",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	cur := keypad.Confirm
	for _, d := range []keypad.Direction{keypad.Left, keypad.Down, keypad.Left} {
		cur, _ = g.Neighbor(cur, d)
		fmt.Print(cur, " ")
	}
	fmt.Println()
	// Output: ^ v <
}

// ExampleNew shows that a mirror of an earlier fact conflicting with the
// layout is reported at construction time.
func ExampleNew() {
	_, err := keypad.New("broken", []keypad.Fact{
		{From: '1', Dir: keypad.Right, To: '2'},
		{From: '3', Dir: keypad.Right, To: '2'},
	})
	fmt.Println(err)
	// Output: keypad: conflicting adjacency: 2 already moves < to 1, not 3 (mirror of fact 3 > 2)
}
