// Package logutil configures loggers from a cli context.
package logutil

import (
	"github.com/lthibault/log"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const metadataKey = "try3.logger"

// New returns the logger stored in the app metadata, creating and storing
// it on first use so every command of one run shares it.
func New(c *cli.Context) log.Logger {
	if logger, ok := c.App.Metadata[metadataKey].(log.Logger); ok {
		return logger
	}

	logger := log.New(
		WithLevel(c),
		WithFormat(c),
		log.WithWriter(c.App.ErrWriter))

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[metadataKey] = logger
	return logger
}

var levels = map[string]log.Option{
	"trace": log.WithLevel(log.TraceLevel),
	"debug": log.WithLevel(log.DebugLevel),
	"info":  log.WithLevel(log.InfoLevel),
	"warn":  log.WithLevel(log.WarnLevel),
	"error": log.WithLevel(log.ErrorLevel),
	"fatal": log.WithLevel(log.FatalLevel),
}

var levelAliases = map[string]string{
	"t":       "trace",
	"d":       "debug",
	"i":       "info",
	"w":       "warn",
	"warning": "warn",
	"e":       "error",
	"err":     "error",
	"f":       "fatal",
}

// LevelName resolves --loglvl to one of trace, debug, info, warn, error or
// fatal. Unknown names mean info; --logfmt=none silences everything below
// fatal.
func LevelName(format, level string) string {
	if format == "none" {
		return "fatal"
	}
	if name, ok := levelAliases[level]; ok {
		level = name
	}
	if _, ok := levels[level]; !ok {
		return "info"
	}
	return level
}

// WithLevel returns a log.Option that configures a logger's level.
func WithLevel(c *cli.Context) log.Option {
	return levels[LevelName(c.String("logfmt"), c.String("loglvl"))]
}

// WithFormat returns an option that configures a logger's format.
func WithFormat(c *cli.Context) log.Option {
	return log.WithFormatter(Formatter(c.String("logfmt"), c.Bool("prettyprint")))
}

// Formatter maps the --logfmt flag value to a logrus formatter.
func Formatter(format string, pretty bool) logrus.Formatter {
	switch format {
	case "json":
		return &logrus.JSONFormatter{PrettyPrint: pretty}
	default:
		return new(logrus.TextFormatter)
	}
}
