package divide

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/try3/internal/logutil"
	"github.com/ib-77/try3/pkg/try"
)

var ErrArgs = errors.New("expected NUM and DEN")

func Command() *cli.Command {
	return &cli.Command{
		Name:      "divide",
		Usage:     "divide two integers, recovering from bad input",
		ArgsUsage: "NUM DEN",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "fallback",
				Usage: "print `N` when the division fails",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "exit with the error instead of falling back",
			},
		},
		Action: divide,
	}
}

func divide(c *cli.Context) error {
	if c.NArg() != 2 {
		return ErrArgs
	}

	log := logutil.New(c).
		WithField("num", c.Args().Get(0)).
		WithField("den", c.Args().Get(1))

	quot := Quotient(c.Args().Get(0), c.Args().Get(1))
	quot.Failed().ForEach(func(err error) {
		log.WithError(err).Warn("division failed")
	})

	if c.Bool("strict") && quot.IsFailure() {
		return quot.Err()
	}

	res := quot.RecoverWith(func(error) try.Try[int] {
		return try.Success(c.Int("fallback"))
	})
	_, err := fmt.Fprintln(c.App.Writer, res)
	return err
}

// Quotient parses both operands and divides them. Parse errors and the
// division by zero panic end up as failures.
func Quotient(num, den string) try.Try[int] {
	n := try.WithFunc(strconv.Atoi, num)
	d := try.WithFunc(strconv.Atoi, den)

	return try.FlatMap(n, func(n int) try.Try[int] {
		return try.Map(d, func(d int) int {
			return n / d
		})
	})
}
