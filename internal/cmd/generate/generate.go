// Package generate retries a flaky supplier until enough strings were made.
package generate

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/try3/internal/gen"
	"github.com/ib-77/try3/internal/logutil"
	"github.com/ib-77/try3/pkg/try"
	"github.com/ib-77/try3/pkg/try/mass"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "strings",
		Usage: "generate random strings, skipping failed attempts",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "stop after `N` strings",
				Value:   3,
			},
			&cli.IntFlag{
				Name:  "attempts",
				Usage: "give up after `N` attempts",
				Value: 100,
			},
			&cli.IntFlag{
				Name:  "max",
				Usage: "generate strings shorter than `N`",
				Value: 10,
			},
			&cli.Uint64Flag{
				Name:        "seed",
				Usage:       "seed the generator with `S`",
				DefaultText: "current time",
			},
			&cli.BoolFlag{
				Name:  "password",
				Usage: "generate passwords instead",
			},
		},
		Action: generate,
	}
}

func generate(c *cli.Context) error {
	g := generator(c)

	supplier := func() (string, error) {
		return g.Name(c.Int("max"))
	}
	if c.Bool("password") {
		supplier = func() (string, error) {
			return g.TryPassword(c.Int("max"), c.Int("max")).Get()
		}
	}

	strs := mass.Generate(c.Int("count"), c.Int("attempts"), supplier)
	logutil.New(c).
		WithField("count", len(strs)).
		Debug("generated")

	_, err := fmt.Fprintf(c.App.Writer, "strings = %s\n", Render(strs))
	return err
}

func generator(c *cli.Context) *gen.Generator {
	if c.IsSet("seed") {
		return gen.NewSeeded(c.Uint64("seed"))
	}
	seed := uint64(time.Now().UnixNano())
	return gen.New(rand.New(rand.NewPCG(seed, seed>>1)))
}

// Render prints results the way a list of values is printed.
func Render[T any](results []try.Try[T]) string {
	return fmt.Sprint(results)
}
