package main

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/lthibault/log"
	"github.com/urfave/cli/v2"

	"github.com/ib-77/try3/internal/cmd/capitalize"
	"github.com/ib-77/try3/internal/cmd/divide"
	"github.com/ib-77/try3/internal/cmd/generate"
	"github.com/ib-77/try3/internal/cmd/query"
	"github.com/ib-77/try3/internal/cmd/recovery"
)

var flags = []cli.Flag{
	// Logging
	&cli.StringFlag{
		Name:    "logfmt",
		Aliases: []string{"f"},
		Usage:   "`format` logs as text, json or none",
		Value:   "text",
		EnvVars: []string{"TRY_LOGFMT"},
	},
	&cli.StringFlag{
		Name:    "loglvl",
		Usage:   "set logging `level` to trace, debug, info, warn, error or fatal",
		Value:   "info",
		EnvVars: []string{"TRY_LOGLVL"},
	},
	// Misc.
	&cli.BoolFlag{
		Name:    "prettyprint",
		Aliases: []string{"pp"},
		Usage:   "pretty-print JSON output",
		Hidden:  true,
	},
}

var commands = []*cli.Command{
	divide.Command(),
	recovery.Command(),
	capitalize.Command(),
	generate.Command(),
	query.Command(nil),
}

func main() {
	// .env is optional; flags and the environment still work without it
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal(err)
	}

	run(&cli.App{
		Name:      "trydemo",
		Usage:     "walk through Try pipelines",
		UsageText: "trydemo [global options] command [command options] [arguments...]",
		Flags:     flags,
		Commands:  commands,
	})
}

func run(app *cli.App) {
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
