// Package events loads events from a SQL table as one flattened Try
// pipeline: connect, query, then scan every row.
package events

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ib-77/try3/pkg/try"
)

type Event struct {
	ID   uuid.UUID
	Type string
	Text string
}

// NewEvent derives the ID from the event content, so loading the same row
// twice yields the same ID.
func NewEvent(typ, text string) Event {
	return Event{
		ID:   uuid.NewSHA1(uuid.NameSpaceOID, []byte(typ+"\x00"+text)),
		Type: typ,
		Text: text,
	}
}

// Conn is the part of *pgx.Conn used by the loader.
type Conn interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close(ctx context.Context) error
}

type Connector func(ctx context.Context, url string) (Conn, error)

// Connect opens a pgx connection.
func Connect(ctx context.Context, url string) (Conn, error) {
	return pgx.Connect(ctx, url)
}

type Loader struct {
	connect Connector
}

func NewLoader(connect Connector) *Loader {
	if connect == nil {
		connect = Connect
	}
	return &Loader{connect: connect}
}

// Load runs query against the database at url. The first failing step
// decides the outcome; the connection is closed either way and a close
// error is joined into the result.
func (l *Loader) Load(ctx context.Context, url, query string) (res try.Try[[]Event]) {
	conn := try.WithBiFunc(l.connect, ctx, url)
	defer func() {
		res = closeConn(ctx, conn, res)
	}()

	rows := try.FlatMap(conn, func(c Conn) try.Try[pgx.Rows] {
		return try.WithBiFunc(func(ctx context.Context, query string) (pgx.Rows, error) {
			return c.Query(ctx, query)
		}, ctx, query)
	})

	return try.FlatMap(rows, func(r pgx.Rows) try.Try[[]Event] {
		return try.WithBiFunc(pgx.CollectRows[Event], r, toEvent)
	})
}

// LoadNested is Load written with Map only. Each step nests one level
// deeper; flattening twice gives the same outcome as Load.
func (l *Loader) LoadNested(ctx context.Context, url, query string) (res try.Try[try.Try[try.Try[[]Event]]]) {
	conn := try.WithBiFunc(l.connect, ctx, url)
	defer func() {
		res = closeConn(ctx, conn, res)
	}()

	rows := try.Map(conn, func(c Conn) try.Try[pgx.Rows] {
		return try.With(func() (pgx.Rows, error) {
			return c.Query(ctx, query)
		})
	})

	return try.Map(rows, func(r try.Try[pgx.Rows]) try.Try[try.Try[[]Event]] {
		return try.Map(r, func(rows pgx.Rows) try.Try[[]Event] {
			return try.WithBiFunc(pgx.CollectRows[Event], rows, toEvent)
		})
	})
}

func toEvent(row pgx.CollectableRow) (Event, error) {
	var typ, text string
	if err := row.Scan(&typ, &text); err != nil {
		return Event{}, err
	}
	return NewEvent(typ, text), nil
}

// closeConn closes an open connection and turns res into a failure when
// that fails, keeping the earlier error if there was one.
func closeConn[T any](ctx context.Context, conn try.Try[Conn], res try.Try[T]) try.Try[T] {
	return try.Fold(conn, func(c Conn) try.Try[T] {
		if err := c.Close(ctx); err != nil {
			return try.Failure[T](errors.Join(res.Err(), fmt.Errorf("close: %w", err)))
		}
		return res
	}, func(error) try.Try[T] {
		return res
	})
}
