// Package recovery walks through recover and recoverWith chains.
package recovery

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/try3/internal/logutil"
	"github.com/ib-77/try3/pkg/try"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:   "recover",
		Usage:  "print the recovery walkthrough",
		Action: recovery,
	}
}

func recovery(c *cli.Context) error {
	log := logutil.New(c)

	for _, a := range Answers() {
		log.WithField("answer", a.Name).Debug(a.Result)
		if _, err := fmt.Fprintf(c.App.Writer, "%s = %s\n", a.Name, a.Result); err != nil {
			return err
		}
	}
	return nil
}

type Answer struct {
	Name   string
	Result fmt.Stringer
}

func divisionByZero() (int, error) {
	zero := 0
	return 2 / zero, nil
}

func value() (int, error) { return 2, nil }

func nextValue() (float64, error) { return 10, nil }

func Answers() []Answer {
	return []Answer{
		{"answer", answer()},
		{"answer2", answer2()},
		{"answer3", answer3()},
		{"answer4", answer4()},
	}
}

// answer fails twice and ends on the second fallback.
func answer() try.Try[int] {
	recovered := try.With(divisionByZero).Recover(func(error) int { return 2 })
	return try.Map(recovered, func(int) int {
		panic(errors.New("unexpected"))
	}).Recover(func(error) int { return 4 })
}

// answer2 recovers once and keeps mapping.
func answer2() try.Try[int] {
	recovered := try.With(divisionByZero).Recover(func(error) int { return 2 })
	return try.Map(recovered, func(x int) int {
		return x * 4
	}).Recover(func(error) int { return 4 })
}

// answer3 switches to another computation after a failed map.
func answer3() try.Try[float64] {
	recovered := try.With(value).Recover(func(error) int { return 2 })
	return try.Map(recovered, func(int) float64 {
		panic(errors.New("fatal"))
	}).RecoverWith(func(error) try.Try[float64] {
		return try.With(nextValue)
	})
}

// answer4 is a chain of responsibility: the first handler only knows how
// to deal with syntax errors and lets anything else through.
func answer4() try.Try[float64] {
	parsed := try.WithFunc(strconv.Atoi, "").
		Recover(func(err error) int {
			if errors.Is(err, strconv.ErrSyntax) {
				return 2
			}
			panic(err)
		})
	return try.Map(parsed, func(x int) float64 {
		return float64(x * 2)
	}).RecoverWith(func(error) try.Try[float64] {
		return try.With(nextValue)
	})
}
