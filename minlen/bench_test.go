package minlen_test

import (
	"testing"

	"github.com/katalvlaran/keypress/keypad"
	"github.com/katalvlaran/keypress/minlen"
)

// BenchmarkMessageLength_Depth25Cold measures a deep query on an empty cache.
func BenchmarkMessageLength_Depth25Cold(b *testing.B) {
	table := directional(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m, _ := minlen.New(table)
		_, _ = m.MessageLength("<A^A^^>AvvvA", 25)
	}
}

// BenchmarkMessageLength_Depth25Warm measures the same query once every
// subproblem is cached.
func BenchmarkMessageLength_Depth25Warm(b *testing.B) {
	m := newMinimizer(b)
	_, _ = m.MessageLength("<A^A^^>AvvvA", 25)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.MessageLength("<A^A^^>AvvvA", 25)
	}
}

// BenchmarkLayers_Depth25 measures the bottom-up construction.
func BenchmarkLayers_Depth25(b *testing.B) {
	m := newMinimizer(b)
	syms := keypad.Directional().Symbols()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Layers(syms, 25)
	}
}
