package minlen_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/katalvlaran/keypress/keypad"
	"github.com/katalvlaran/keypress/minlen"
	"github.com/katalvlaran/keypress/minlen/mocks"
	"github.com/katalvlaran/keypress/paths"
)

func directional(t testing.TB) *paths.Table {
	t.Helper()
	table, err := paths.Build(keypad.Directional())
	require.NoError(t, err)

	return table
}

func newMinimizer(t testing.TB, opts ...minlen.Option) *minlen.Minimizer {
	t.Helper()
	m, err := minlen.New(directional(t), opts...)
	require.NoError(t, err)

	return m
}

// TestMessageLength_Reference checks the lengths of the 029A rewrites as they
// pass through two directional layers: 12 -> 28 -> 68.
func TestMessageLength_Reference(t *testing.T) {
	m := newMinimizer(t)
	msg := "<A^A>^^AvvvA"

	for depth, want := range []int64{12, 28, 68} {
		got, err := m.MessageLength(msg, depth)
		require.NoError(t, err)
		assert.Equal(t, want, got, "depth %d", depth)
	}
}

// TestMessageLength_DepthZero verifies that depth 0 is the message length and
// never consults the source, so even keys absent from it are accepted.
func TestMessageLength_DepthZero(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPathSource(ctrl)
	m, err := minlen.New(src)
	require.NoError(t, err)

	got, err := m.MessageLength("029A", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)

	got, err = m.MessageLength("XYZ", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(3), got)

	one, err := m.MinLength('X', 'Y', 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), one)

	got, err = m.MessageLength("", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), got)

	assert.Equal(t, minlen.Stats{}, m.Stats())
}

// TestMinLength_Memoized verifies each (prev, cur, depth) is computed once:
// the source is asked for A -> ^ once per depth and for the other pairs
// once in total.
func TestMinLength_Memoized(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockPathSource(ctrl)

	src.EXPECT().Paths(keypad.Confirm, keypad.Symbol('^')).Return([]string{"<"}, nil).Times(2)
	src.EXPECT().Paths(keypad.Confirm, keypad.Symbol('<')).Return([]string{"v<<", "<v<"}, nil).Times(1)
	src.EXPECT().Paths(keypad.Symbol('<'), keypad.Confirm).Return([]string{">>^", ">^>"}, nil).Times(1)

	var computed []int
	m, err := minlen.New(src, minlen.WithOnCompute(func(_, _ keypad.Symbol, depth int) {
		computed = append(computed, depth)
	}))
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		got, err := m.MinLength(keypad.Confirm, '^', 1)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got)
	}
	for i := 0; i < 2; i++ {
		got, err := m.MinLength(keypad.Confirm, '^', 2)
		require.NoError(t, err)
		assert.Equal(t, int64(8), got)
	}

	// misses: (A,^,1) (A,^,2) (A,<,1) (<,A,1)
	assert.Equal(t, []int{1, 2, 1, 1}, computed)
	assert.Equal(t, minlen.Stats{Hits: 2, Misses: 4, Entries: 4}, m.Stats())

	m.Reset()
	assert.Equal(t, minlen.Stats{}, m.Stats())
}

// TestMinLength_PicksCheapestTie shows why ties are kept: from A to < the
// two routes cost the same on the first layer but not on the second.
func TestMinLength_PicksCheapestTie(t *testing.T) {
	m := newMinimizer(t)

	first, err := m.MessageLength("<v<A", 1)
	require.NoError(t, err)
	second, err := m.MessageLength("v<<A", 1)
	require.NoError(t, err)
	assert.Greater(t, first, second)

	got, err := m.MinLength(keypad.Confirm, '<', 2)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

// TestMinLength_Monotone verifies adding a layer never makes a move cheaper.
func TestMinLength_Monotone(t *testing.T) {
	m := newMinimizer(t)
	syms := keypad.Directional().Symbols()

	for _, p := range syms {
		for _, c := range syms {
			prev := int64(0)
			for depth := 0; depth <= 6; depth++ {
				got, err := m.MinLength(p, c, depth)
				require.NoError(t, err)
				assert.GreaterOrEqual(t, got, prev, "%s->%s depth %d", p, c, depth)
				prev = got
			}
		}
	}
}

// TestMinLength_DepthOne equals the shortest distance plus the Confirm press.
func TestMinLength_DepthOne(t *testing.T) {
	table := directional(t)
	m, err := minlen.New(table)
	require.NoError(t, err)

	for _, p := range table.Pairs() {
		d, err := table.Distance(p.From, p.To)
		require.NoError(t, err)
		got, err := m.MinLength(p.From, p.To, 1)
		require.NoError(t, err)
		assert.Equal(t, d+1, got, p.String())
	}
}

// TestLayers_MatchesMemo cross-checks the bottom-up table against the
// recursion for every pair and depth.
func TestLayers_MatchesMemo(t *testing.T) {
	m := newMinimizer(t)
	syms := keypad.Directional().Symbols()

	const depth = 8
	levels, err := m.Layers(syms, depth)
	require.NoError(t, err)
	require.Len(t, levels, depth+1)
	assert.Equal(t, minlen.Stats{}, m.Stats(), "Layers leaves the cache alone")

	for k, level := range levels {
		require.Len(t, level, len(syms)*len(syms))
		for pair, want := range level {
			got, err := m.MinLength(pair.From, pair.To, k)
			require.NoError(t, err)
			assert.Equal(t, want, got, "%s depth %d", pair, k)
		}
	}
}

func TestLayers_Errors(t *testing.T) {
	m := newMinimizer(t)

	_, err := m.Layers(keypad.Directional().Symbols(), -1)
	require.ErrorIs(t, err, minlen.ErrNegativeDepth)

	// without < the route A -> v cannot be priced
	_, err = m.Layers([]keypad.Symbol{'A', '^', 'v', '>'}, 2)
	require.ErrorIs(t, err, minlen.ErrIncompleteAlphabet)

	levels, err := m.Layers(nil, 0)
	require.NoError(t, err)
	require.Len(t, levels, 1)
}

func TestMinimizer_Errors(t *testing.T) {
	_, err := minlen.New(nil)
	require.ErrorIs(t, err, minlen.ErrNilSource)

	m := newMinimizer(t)
	_, err = m.MinLength(keypad.Confirm, '^', -1)
	require.ErrorIs(t, err, minlen.ErrNegativeDepth)
	_, err = m.MessageLength("<A", -2)
	require.ErrorIs(t, err, minlen.ErrNegativeDepth)
	assert.Equal(t, minlen.Stats{}, m.Stats(), "validation happens before any work")

	_, err = m.MessageLength("7", 1)
	require.ErrorIs(t, err, paths.ErrPairNotFound)
	require.ErrorContains(t, err, "minlen A->7 at depth 1")

	ctrl := gomock.NewController(t)
	src := mocks.NewMockPathSource(ctrl)
	src.EXPECT().Paths(keypad.Confirm, keypad.Symbol('x')).Return(nil, nil)
	src.EXPECT().Paths(keypad.Confirm, keypad.Symbol('y')).Return(nil, errors.New("boom"))
	empty, err := minlen.New(src)
	require.NoError(t, err)
	_, err = empty.MinLength(keypad.Confirm, 'x', 1)
	require.ErrorIs(t, err, minlen.ErrNoCandidates)
	_, err = empty.MinLength(keypad.Confirm, 'y', 3)
	require.ErrorContains(t, err, "boom")
}

// TestMessageLength_Overflow verifies that counts past math.MaxInt64 fail
// instead of wrapping, and that the failure is memoized like any value.
func TestMessageLength_Overflow(t *testing.T) {
	m := newMinimizer(t)

	_, err := m.MessageLength("<A", 60)
	require.ErrorIs(t, err, minlen.ErrOverflow)
	misses := m.Stats().Misses

	_, err = m.MinLength(keypad.Confirm, '<', 60)
	require.ErrorIs(t, err, minlen.ErrOverflow)
	assert.Equal(t, misses, m.Stats().Misses, "overflowed pair answered from the cache")

	n, err := m.MessageLength("<A", 30)
	require.NoError(t, err)
	assert.Positive(t, n)

	_, err = m.Layers(keypad.Directional().Symbols(), 60)
	require.ErrorIs(t, err, minlen.ErrOverflow)
}
