package gen

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLength(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 5, length(5, 3))
	assert.Equal(t, 5, length(5, 5))
	assert.Equal(t, 8, length(5, 8))
}

func TestAlphabetic_OnlyLetters(t *testing.T) {
	t.Parallel()

	g := NewSeeded(7)
	for i := 0; i < 50; i++ {
		s := g.Alphabetic(10, 20)
		assert.LessOrEqual(t, len(s), 20)
		for _, r := range s {
			assert.True(t, unicode.IsLetter(r), "unexpected %q in %q", r, s)
		}
	}
}

func TestSeededGeneratorsAgree(t *testing.T) {
	t.Parallel()

	a, b := NewSeeded(42), NewSeeded(42)
	assert.Equal(t, a.Alphabetic(10, 10), b.Alphabetic(10, 10))
	assert.Equal(t, a.Password(8, 12), b.Password(8, 12))
}

func TestPassword_MixesClasses(t *testing.T) {
	t.Parallel()

	p := NewSeeded(1).Password(12, 12)
	require.Len(t, p, 12)

	assert.True(t, strings.IndexFunc(p, unicode.IsLower) >= 0)
	assert.True(t, strings.IndexFunc(p, unicode.IsUpper) >= 0)
	assert.True(t, strings.IndexFunc(p, unicode.IsDigit) >= 0)
	assert.True(t, strings.IndexFunc(p, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) >= 0)

	assert.Len(t, NewSeeded(1).Password(4, 2), 4)
}

func TestTryPassword(t *testing.T) {
	t.Parallel()

	g := NewSeeded(3)

	ok := g.TryPassword(6, 8)
	require.True(t, ok.IsSuccess())
	assert.Len(t, ok.MustGet(), 8)

	tooLong := g.TryPassword(20, 0)
	assert.ErrorIs(t, tooLong.Err(), ErrTooLong)
	assert.EqualError(t, tooLong.Err(), "gen: requested length exceeds the password pool: 20 > 12")
}

func TestTryAlphabetic(t *testing.T) {
	t.Parallel()

	g := NewSeeded(9)

	empty := g.TryAlphabetic(0, 0)
	assert.ErrorIs(t, empty.Err(), ErrEmpty)

	found := false
	for i := 0; i < 20 && !found; i++ {
		found = g.TryAlphabetic(10, 10).IsSuccess()
	}
	assert.True(t, found)
}

func TestName_FailsSometimes(t *testing.T) {
	t.Parallel()

	g := NewSeeded(3)
	var ok, failed int
	for i := 0; i < 300; i++ {
		s, err := g.Name(10)
		if err != nil {
			assert.ErrorIs(t, err, ErrNoLuck)
			failed++
			continue
		}
		ok++
		assert.Less(t, len(s), 10)
		assert.Equal(t, strings.ToLower(s), s)
	}
	assert.Positive(t, ok)
	assert.Positive(t, failed)
}
