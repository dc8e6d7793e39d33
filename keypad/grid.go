package keypad

import "fmt"

// FromRows builds a keypad from a text layout, one string per row, top row
// first. Each byte is a key label; Hole (a space) marks a missing cell.
// Horizontally and vertically adjacent keys are linked with unit moves
// unless opts override the weight.
//
// Returns ErrEmptyGrid for no rows or empty rows, ErrNonRectangular if row
// lengths differ, ErrDuplicateSymbol if a label repeats, and any error New
// reports for the derived facts (e.g. ErrDisconnected).
// Complexity: O(W×H).
func FromRows(name string, rows []string, opts ...Option) (*Graph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}

	seen := make(map[byte]struct{}, w*len(rows))
	var facts []Fact
	for y, row := range rows {
		for x := 0; x < w; x++ {
			c := row[x]
			if c == Hole {
				continue
			}
			if _, dup := seen[c]; dup {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, c)
			}
			seen[c] = struct{}{}

			if x+1 < w && row[x+1] != Hole {
				facts = append(facts, Fact{From: Symbol(c), Dir: Right, To: Symbol(row[x+1])})
			}
			if y+1 < len(rows) && rows[y+1][x] != Hole {
				facts = append(facts, Fact{From: Symbol(c), Dir: Down, To: Symbol(rows[y+1][x])})
			}
		}
	}

	return New(name, facts, opts...)
}
