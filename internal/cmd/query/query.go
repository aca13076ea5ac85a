// Package query loads events from PostgreSQL through a Try pipeline.
package query

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ib-77/try3/internal/events"
	"github.com/ib-77/try3/internal/logutil"
	"github.com/ib-77/try3/pkg/try"
)

var ErrNoURL = errors.New("no database url; set --db-url or TRY_DB_URL")

// Command builds the events command. A nil connector dials PostgreSQL.
func Command(connect events.Connector) *cli.Command {
	loader := events.NewLoader(connect)

	return &cli.Command{
		Name:  "events",
		Usage: "load events with a SQL query",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "db-url",
				Usage:   "connect to the database at `URL`",
				EnvVars: []string{"TRY_DB_URL"},
			},
			&cli.StringFlag{
				Name:  "sql",
				Usage: "run `QUERY`; it must select type and text columns",
				Value: "select type, text from events",
			},
			&cli.BoolFlag{
				Name:  "nested",
				Usage: "build the pipeline with Map and flatten it afterwards",
			},
		},
		Action: func(c *cli.Context) error {
			if c.String("db-url") == "" {
				return ErrNoURL
			}

			log := logutil.New(c).WithField("sql", c.String("sql"))

			res := load(c, loader)
			res.Match(func(evs []events.Event) {
				log.WithField("count", len(evs)).Info("events loaded")
			}, func(err error) {
				log.WithError(err).Error("events not loaded")
			})

			if res.IsFailure() {
				return res.Err()
			}
			for _, ev := range res.MustGet() {
				if _, err := fmt.Fprintf(c.App.Writer, "%s\t%s\t%s\n", ev.ID, ev.Type, ev.Text); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func load(c *cli.Context, loader *events.Loader) try.Try[[]events.Event] {
	if c.Bool("nested") {
		return try.Flatten(try.Flatten(
			loader.LoadNested(c.Context, c.String("db-url"), c.String("sql"))))
	}
	return loader.Load(c.Context, c.String("db-url"), c.String("sql"))
}
