package events

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/try3/pkg/try"
)

// fakeRows serves fixed rows; methods the loader does not use are left to
// the embedded nil interface.
type fakeRows struct {
	pgx.Rows
	data   [][2]string
	pos    int
	closed bool
	err    error
}

func (r *fakeRows) Next() bool {
	if r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Scan(dest ...any) error {
	if len(dest) != 2 {
		return fmt.Errorf("expected 2 destinations, got %d", len(dest))
	}
	row := r.data[r.pos-1]
	*dest[0].(*string) = row[0]
	*dest[1].(*string) = row[1]
	return nil
}

func (r *fakeRows) Close()     { r.closed = true }
func (r *fakeRows) Err() error { return r.err }

type fakeConn struct {
	rows     *fakeRows
	queryErr error
	closeErr error
	closed   bool
	queries  []string
}

func (c *fakeConn) Query(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
	c.queries = append(c.queries, sql)
	if c.queryErr != nil {
		return nil, c.queryErr
	}
	return c.rows, nil
}

func (c *fakeConn) Close(context.Context) error {
	c.closed = true
	return c.closeErr
}

func connectTo(conn *fakeConn, err error) Connector {
	return func(context.Context, string) (Conn, error) {
		if err != nil {
			return nil, err
		}
		return conn, nil
	}
}

const selectEvents = "select * from events"

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	rows := &fakeRows{data: [][2]string{{"login", "alice"}, {"logout", "bob"}}}
	conn := &fakeConn{rows: rows}

	res := NewLoader(connectTo(conn, nil)).Load(context.Background(), "postgres://test", selectEvents)

	evs, err := res.Get()
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.Equal(t, "login", evs[0].Type)
	assert.Equal(t, "bob", evs[1].Text)
	assert.NotEqual(t, uuid.Nil, evs[0].ID)
	assert.Equal(t, NewEvent("login", "alice").ID, evs[0].ID)

	assert.Equal(t, []string{selectEvents}, conn.queries)
	assert.True(t, rows.closed)
	assert.True(t, conn.closed)
}

func TestLoad_ConnectFails(t *testing.T) {
	t.Parallel()

	refused := errors.New("connection refused")
	res := NewLoader(connectTo(nil, refused)).Load(context.Background(), "postgres://test", selectEvents)

	assert.Same(t, refused, res.Err())
}

func TestLoad_QueryFails(t *testing.T) {
	t.Parallel()

	syntax := errors.New("syntax error")
	conn := &fakeConn{queryErr: syntax}
	res := NewLoader(connectTo(conn, nil)).Load(context.Background(), "postgres://test", "selec")

	assert.Same(t, syntax, res.Err())
	assert.True(t, conn.closed)
}

func TestLoad_CloseFails(t *testing.T) {
	t.Parallel()

	reset := errors.New("connection reset")
	conn := &fakeConn{rows: &fakeRows{data: [][2]string{{"login", "alice"}}}, closeErr: reset}
	res := NewLoader(connectTo(conn, nil)).Load(context.Background(), "postgres://test", selectEvents)

	require.True(t, res.IsFailure())
	assert.ErrorIs(t, res.Err(), reset)
	assert.EqualError(t, res.Err(), "close: connection reset")
	assert.True(t, conn.closed)
}

func TestLoad_QueryAndCloseFail(t *testing.T) {
	t.Parallel()

	syntax := errors.New("syntax error")
	reset := errors.New("connection reset")
	conn := &fakeConn{queryErr: syntax, closeErr: reset}
	res := NewLoader(connectTo(conn, nil)).Load(context.Background(), "postgres://test", "selec")

	assert.ErrorIs(t, res.Err(), syntax)
	assert.ErrorIs(t, res.Err(), reset)

	nested := NewLoader(connectTo(&fakeConn{closeErr: reset, rows: &fakeRows{}}, nil)).
		LoadNested(context.Background(), "postgres://test", selectEvents)
	assert.ErrorIs(t, nested.Err(), reset)
}

func TestLoad_RowsErr(t *testing.T) {
	t.Parallel()

	broken := errors.New("broken pipe")
	conn := &fakeConn{rows: &fakeRows{data: [][2]string{{"a", "b"}}, err: broken}}
	res := NewLoader(connectTo(conn, nil)).Load(context.Background(), "postgres://test", selectEvents)

	assert.Same(t, broken, res.Err())
}

func TestLoad_ConnectorPanics(t *testing.T) {
	t.Parallel()

	res := NewLoader(func(context.Context, string) (Conn, error) {
		panic("driver exploded")
	}).Load(context.Background(), "postgres://test", selectEvents)

	var pe *try.PanicError
	assert.ErrorAs(t, res.Err(), &pe)
}

func TestLoadNested_FlattensToLoad(t *testing.T) {
	t.Parallel()

	conn := &fakeConn{rows: &fakeRows{data: [][2]string{{"login", "alice"}}}}
	nested := NewLoader(connectTo(conn, nil)).LoadNested(context.Background(), "postgres://test", selectEvents)

	require.True(t, nested.IsSuccess())
	flat := try.Flatten(try.Flatten(nested))
	assert.Equal(t, []Event{NewEvent("login", "alice")}, flat.MustGet())

	syntax := errors.New("syntax error")
	failing := &fakeConn{queryErr: syntax}
	nestedFailure := NewLoader(connectTo(failing, nil)).LoadNested(context.Background(), "postgres://test", selectEvents)

	// the outer level succeeded; the failure sits one level down
	assert.True(t, nestedFailure.IsSuccess())
	assert.Same(t, syntax, try.Flatten(try.Flatten(nestedFailure)).Err())
}
