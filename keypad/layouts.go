package keypad

// NumericFacts returns the adjacency of the door keypad:
//
//	+---+---+---+
//	| 7 | 8 | 9 |
//	+---+---+---+
//	| 4 | 5 | 6 |
//	+---+---+---+
//	| 1 | 2 | 3 |
//	+---+---+---+
//	    | 0 | A |
//	    +---+---+
//
// The bottom row is offset, so it is declared explicitly instead of being
// derived from a uniform grid rule.
func NumericFacts() []Fact {
	facts := make([]Fact, 0, 15)
	// vertical neighbors n above n-3
	for n := byte(4); n <= 9; n++ {
		facts = append(facts, Fact{From: Symbol('0' + n), Dir: Down, To: Symbol('0' + n - 3)})
	}
	// horizontal neighbors n left of n+1
	for _, n := range []byte{1, 2, 4, 5, 7, 8} {
		facts = append(facts, Fact{From: Symbol('0' + n), Dir: Right, To: Symbol('0' + n + 1)})
	}
	// bottom row
	facts = append(facts,
		Fact{From: '2', Dir: Down, To: '0'},
		Fact{From: '3', Dir: Down, To: Confirm},
		Fact{From: '0', Dir: Right, To: Confirm},
	)

	return facts
}

// DirectionalFacts returns the adjacency of the robot control keypad:
//
//	    +---+---+
//	    | ^ | A |
//	+---+---+---+
//	| < | v | > |
//	+---+---+---+
func DirectionalFacts() []Fact {
	return []Fact{
		{From: Up.Symbol(), Dir: Down, To: Down.Symbol()},
		{From: Confirm, Dir: Down, To: Right.Symbol()},
		{From: Up.Symbol(), Dir: Right, To: Confirm},
		{From: Left.Symbol(), Dir: Right, To: Down.Symbol()},
		{From: Down.Symbol(), Dir: Right, To: Right.Symbol()},
	}
}

// Numeric returns the door keypad graph.
func Numeric() *Graph { return MustNew("numeric", NumericFacts()) }

// Directional returns the robot control keypad graph.
func Directional() *Graph { return MustNew("directional", DirectionalFacts()) }
