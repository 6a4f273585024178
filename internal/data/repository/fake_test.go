package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type sqlCall struct {
	sql  string
	args []any
}

// fakeDB records every statement a repository issues. Reads come back
// empty (no rows, zero rows affected); the tests here assert on the
// generated SQL and bound parameters, not on scanned results.
type fakeDB struct {
	execs   []sqlCall
	queries []sqlCall
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sqlCall{sql: sql, args: args})
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, sqlCall{sql: sql, args: args})
	return &fakeRow{err: pgx.ErrNoRows}
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, sqlCall{sql: sql, args: args})
	return &fakeRows{}, nil
}

func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeDB) Ping(context.Context) error { return nil }

func (f *fakeDB) Close() {}

type fakeRow struct {
	err error
}

func (r *fakeRow) Scan(...any) error { return r.err }

type fakeRows struct{}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return false }
func (r *fakeRows) Scan(...any) error                            { return pgx.ErrNoRows }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }
