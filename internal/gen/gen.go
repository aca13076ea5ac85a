// Package gen generates random strings and passwords from an injected
// source, and exposes Try-lifted variants for callers that want failures
// as values.
package gen

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"unicode"

	"github.com/samber/lo"

	"github.com/ib-77/try3/pkg/try"
)

var (
	ErrEmpty   = errors.New("gen: generated string is empty")
	ErrTooLong = errors.New("gen: requested length exceeds the password pool")
	ErrNoLuck  = errors.New("gen: could not generate string")
)

// passwordPool is the number of characters drawn per character class.
const passwordPool = 3

type charRange struct {
	from, to rune // inclusive
}

var (
	printable = charRange{'!', '}'}
	lower     = charRange{'a', 'z'}
	upper     = charRange{'A', 'Z'}
	digits    = charRange{'0', '9'}
	specials  = []charRange{{'!', '-'}, {':', '@'}, {'[', '`'}}
)

type Generator struct {
	rnd *rand.Rand
}

func New(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// NewSeeded returns a Generator whose output is fully determined by seed.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

func length(minSize, maxSize int) int {
	if maxSize <= minSize {
		return minSize
	}
	return maxSize
}

func (g *Generator) draw(r charRange, n int) []rune {
	return lo.Times(max(n, 0), func(int) rune {
		return r.from + rune(g.rnd.IntN(int(r.to-r.from)+1))
	})
}

// Alphabetic draws length(minSize, maxSize) printable characters and keeps
// the letters, so the result may be shorter than requested or even empty.
func (g *Generator) Alphabetic(minSize, maxSize int) string {
	return string(lo.Filter(g.draw(printable, length(minSize, maxSize)), func(r rune, _ int) bool {
		return unicode.IsLetter(r)
	}))
}

// Password mixes lower case, upper case, digit and special characters,
// shuffles them and keeps the first length(minSize, maxSize).
func (g *Generator) Password(minSize, maxSize int) string {
	special := specials[g.rnd.IntN(len(specials))]

	pool := make([]rune, 0, 4*passwordPool)
	pool = append(pool, g.draw(lower, passwordPool)...)
	pool = append(pool, g.draw(upper, passwordPool)...)
	pool = append(pool, g.draw(digits, passwordPool)...)
	pool = append(pool, g.draw(special, passwordPool)...)

	g.rnd.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	n := min(length(minSize, maxSize), len(pool))
	return string(pool[:max(n, 0)])
}

// Name returns fewer than maxSize lower case letters. One call in three
// fails with ErrNoLuck, which makes it a handy supplier for retry loops.
func (g *Generator) Name(maxSize int) (string, error) {
	if g.rnd.IntN(3) == 0 {
		return "", ErrNoLuck
	}
	return string(g.draw(lower, g.rnd.IntN(max(maxSize, 1)))), nil
}

// TryAlphabetic fails with ErrEmpty when no letter was drawn.
func (g *Generator) TryAlphabetic(minSize, maxSize int) try.Try[string] {
	return try.With(func() (string, error) {
		s := g.Alphabetic(minSize, maxSize)
		if s == "" {
			return "", ErrEmpty
		}
		return s, nil
	})
}

// TryPassword fails with ErrTooLong when the pool cannot cover the length.
func (g *Generator) TryPassword(minSize, maxSize int) try.Try[string] {
	return try.With(func() (string, error) {
		if n := length(minSize, maxSize); n > 4*passwordPool {
			return "", fmt.Errorf("%w: %d > %d", ErrTooLong, n, 4*passwordPool)
		}
		return g.Password(minSize, maxSize), nil
	})
}
