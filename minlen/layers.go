package minlen

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/keypress/keypad"
	"github.com/katalvlaran/keypress/paths"
)

// Layers computes MinLength for every ordered pair of symbols at every depth
// from 0 to depth, bottom-up.
//
// Level 0 is all ones; level k is derived only from level k-1, which is
// read-only while level k is filled. The result holds depth+1 levels and
// agrees with MinLength pair for pair. Layers neither reads nor fills the
// memo cache.
//
// symbols must contain Confirm and every key appearing in the source's
// candidates, otherwise ErrIncompleteAlphabet is returned. A level whose
// counts pass math.MaxInt64 fails with ErrOverflow.
//
// Complexity: O(depth · S² · C · P) for S symbols, C candidates per pair
// and P presses per candidate.
func (m *Minimizer) Layers(symbols []keypad.Symbol, depth int) ([]map[paths.Pair]int64, error) {
	if depth < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeDepth, depth)
	}

	base := make(map[paths.Pair]int64, len(symbols)*len(symbols))
	for _, p := range symbols {
		for _, c := range symbols {
			base[paths.Pair{From: p, To: c}] = 1
		}
	}
	levels := []map[paths.Pair]int64{base}

	for k := 1; k <= depth; k++ {
		below := levels[k-1]
		level := make(map[paths.Pair]int64, len(below))
		for _, p := range symbols {
			for _, c := range symbols {
				cands, err := m.src.Paths(p, c)
				if err != nil {
					return nil, fmt.Errorf("layer %d %s->%s: %w", k, p, c, err)
				}
				if len(cands) == 0 {
					return nil, fmt.Errorf("%w: %s->%s", ErrNoCandidates, p, c)
				}
				best, fits := int64(math.MaxInt64), false
				for _, cand := range cands {
					n, err := sumLevel(below, cand+keypad.Confirm.String())
					if errors.Is(err, ErrOverflow) {
						continue
					}
					if err != nil {
						return nil, fmt.Errorf("layer %d %s->%s: %w", k, p, c, err)
					}
					best, fits = min(best, n), true
				}
				if !fits {
					return nil, fmt.Errorf("layer %d %s->%s: %w", k, p, c, ErrOverflow)
				}
				level[paths.Pair{From: p, To: c}] = best
			}
		}
		levels = append(levels, level)
	}

	return levels, nil
}

// sumLevel prices msg, starting on Confirm, with the per-pair costs of level.
func sumLevel(level map[paths.Pair]int64, msg string) (int64, error) {
	var total int64
	prev := keypad.Confirm
	for i := 0; i < len(msg); i++ {
		cur := keypad.Symbol(msg[i])
		n, ok := level[paths.Pair{From: prev, To: cur}]
		if !ok {
			return 0, fmt.Errorf("%w: %s->%s", ErrIncompleteAlphabet, prev, cur)
		}
		var err error
		if total, err = addLength(total, n); err != nil {
			return 0, fmt.Errorf("message %q: %w", msg, err)
		}
		prev = cur
	}

	return total, nil
}
