package rewrite_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/keypress/keypad"
	"github.com/katalvlaran/keypress/paths"
	"github.com/katalvlaran/keypress/rewrite"
)

func numericRewriter(t *testing.T, opts ...rewrite.Option) *rewrite.Rewriter {
	t.Helper()
	table, err := paths.Build(keypad.Numeric())
	require.NoError(t, err)
	r, err := rewrite.New(table, opts...)
	require.NoError(t, err)

	return r
}

// TestRewrite_029A lists the three first-layer rewrites of 029A.
// Only the 2 -> 9 move has a choice (>^^, ^>^, ^^>).
func TestRewrite_029A(t *testing.T) {
	r := numericRewriter(t)

	got, err := r.Rewrite("029A")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"<A^A>^^AvvvA",
		"<A^A^>^AvvvA",
		"<A^A^^>AvvvA",
	}, got)
	for _, s := range got {
		assert.Len(t, s, 12)
	}

	n, err := r.Count("029A")
	require.NoError(t, err)
	assert.Equal(t, len(got), n)
}

// TestRewrite_ConfirmCount checks that every rewrite registers each key of
// the message with exactly one Confirm.
func TestRewrite_ConfirmCount(t *testing.T) {
	r := numericRewriter(t)

	for _, code := range []string{"980A", "179A", "456A", "379A"} {
		got, err := r.Rewrite(code)
		require.NoError(t, err, code)
		require.NotEmpty(t, got, code)
		for _, s := range got {
			confirms := 0
			for i := 0; i < len(s); i++ {
				if s[i] == 'A' {
					confirms++
				}
			}
			assert.Equal(t, len(code), confirms, "%s -> %s", code, s)
			assert.Len(t, s, len(got[0]), "rewrites of one message share a length")
		}
	}

	n, err := r.Count("379A")
	require.NoError(t, err)
	assert.Equal(t, 6, n, "3 -> 7 has C(4,2) routes")
}

// TestRewrite_Directional rewrites a directional message and checks the
// leftmost pair varies slowest.
func TestRewrite_Directional(t *testing.T) {
	table, err := paths.Build(keypad.Directional())
	require.NoError(t, err)
	r, err := rewrite.New(table)
	require.NoError(t, err)

	got, err := r.Rewrite("<A")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"<v<A>>^A",
		"<v<A>^>A",
		"v<<A>>^A",
		"v<<A>^>A",
	}, got)
}

func TestRewrite_EmptyMessage(t *testing.T) {
	r := numericRewriter(t)

	got, err := r.Rewrite("")
	require.NoError(t, err)
	assert.Equal(t, []string{""}, got)

	n, err := r.Count("")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRewrite_Errors(t *testing.T) {
	_, err := rewrite.New(nil)
	require.ErrorIs(t, err, rewrite.ErrNilSource)

	table, err := paths.Build(keypad.Numeric())
	require.NoError(t, err)
	_, err = rewrite.New(table, rewrite.WithLimit(-3))
	require.ErrorIs(t, err, rewrite.ErrOptionViolation)

	r := numericRewriter(t)
	_, err = r.Rewrite("0x9A")
	require.ErrorIs(t, err, paths.ErrPairNotFound)
	require.ErrorContains(t, err, `rewrite "0x9A" at 1`)

	_, err = r.Count("^")
	require.ErrorIs(t, err, paths.ErrPairNotFound)

	limited := numericRewriter(t, rewrite.WithLimit(5))
	_, err = limited.Rewrite("379A")
	require.ErrorIs(t, err, rewrite.ErrTooManyRewrites)
	got, err := limited.Rewrite("029A")
	require.NoError(t, err)
	require.Len(t, got, 3)
}

// stubSource serves fixed candidates and fails on anything else.
type stubSource map[paths.Pair][]string

func (s stubSource) Paths(from, to keypad.Symbol) ([]string, error) {
	c, ok := s[paths.Pair{From: from, To: to}]
	if !ok {
		return nil, errors.New("stub: no such pair")
	}

	return c, nil
}

// TestRewrite_CustomSource exercises the PathSource contract with a source
// that is not a paths.Table.
func TestRewrite_CustomSource(t *testing.T) {
	src := stubSource{
		{From: 'A', To: 'x'}: {"^", "v"},
		{From: 'x', To: 'x'}: {""},
		{From: 'x', To: 'A'}: {">"},
	}
	r, err := rewrite.New(src)
	require.NoError(t, err)

	got, err := r.Rewrite("xxA")
	require.NoError(t, err)
	assert.Equal(t, []string{"^AA>A", "vAA>A"}, got)

	_, err = r.Rewrite("y")
	require.ErrorContains(t, err, "stub: no such pair")
}

// TestRewrite_CountOverflow verifies that a count past math.MaxInt is
// reported rather than wrapped, with or without a limit.
func TestRewrite_CountOverflow(t *testing.T) {
	src := stubSource{
		{From: 'A', To: 'x'}: {"^", "v"},
		{From: 'x', To: 'x'}: {"<", ">"},
	}
	r, err := rewrite.New(src)
	require.NoError(t, err)

	msg := strings.Repeat("x", 70)
	_, err = r.Count(msg)
	require.ErrorIs(t, err, rewrite.ErrTooManyRewrites)
	_, err = r.Rewrite(msg)
	require.ErrorIs(t, err, rewrite.ErrTooManyRewrites)

	n, err := r.Count(strings.Repeat("x", 10))
	require.NoError(t, err)
	assert.Equal(t, 1024, n)
}
