// Package capitalize lifts a failing function over the command's arguments.
package capitalize

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v2"

	"github.com/ib-77/try3/internal/logutil"
	"github.com/ib-77/try3/pkg/try"
	"github.com/ib-77/try3/pkg/try/mass"
)

var ErrEmptyWord = errors.New("empty word")

func Command() *cli.Command {
	return &cli.Command{
		Name:      "capitalize",
		Usage:     "capitalize every word, keeping one result per word",
		ArgsUsage: "WORD...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "prefix",
				Usage: "prepend `PREFIX` to every capitalized word",
			},
			&cli.IntFlag{
				Name:  "min",
				Usage: "keep only words with at least `N` letters",
			},
			&cli.BoolFlag{
				Name:  "all",
				Usage: "fail unless every word could be capitalized",
			},
		},
		Action: capitalize,
	}
}

func capitalize(c *cli.Context) error {
	log := logutil.New(c)

	words := mass.Filter(c.Args().Slice(), AtLeast(c.Int("min")))
	results := mass.Lift(words, Capitalize)
	if prefix := c.String("prefix"); prefix != "" {
		results = PrefixAll(prefix, words)
	}

	for _, err := range mass.Failures(results) {
		log.WithError(err).Debug("word skipped")
	}

	if c.Bool("all") {
		all := mass.SequenceAll(results)
		if all.IsFailure() {
			return all.Err()
		}
	}

	for _, r := range results {
		if _, err := fmt.Fprintln(c.App.Writer, r); err != nil {
			return err
		}
	}
	return nil
}

func Capitalize(s string) (string, error) {
	if s == "" {
		return "", ErrEmptyWord
	}
	return strings.ToUpper(s), nil
}

// PrefixAll capitalizes each word inside its own Try and prepends prefix
// to the successes.
func PrefixAll(prefix string, words []string) []try.Try[string] {
	return lo.Map(words, func(w string, _ int) try.Try[string] {
		return prefixed(prefix, w)
	})
}

func prefixed(prefix, word string) try.Try[string] {
	return try.Map(try.WithFunc(Capitalize, word), func(s string) string {
		return prefix + s
	})
}

// AtLeast reports whether a word has at least n bytes. It never fails;
// the error return lets it plug into the lifted filters.
func AtLeast(n int) func(string) (bool, error) {
	return func(s string) (bool, error) {
		return len(s) >= n, nil
	}
}
