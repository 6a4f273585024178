package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type sqlCall struct {
	sql  string
	args []any
}

// fakeDB is a scriptable PgxIface. Every statement is recorded; the
// optional func fields drive per-test behavior and default to success
// (Exec) or no rows (QueryRow/Query).
type fakeDB struct {
	execs   []sqlCall
	queries []sqlCall

	execFn     func(sql string, args []any) error
	queryRowFn func(sql string, args []any) *fakeRow
	queryFn    func(sql string, args []any) (pgx.Rows, error)
}

func (f *fakeDB) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sqlCall{sql: sql, args: args})
	if f.execFn != nil {
		if err := f.execFn(sql, args); err != nil {
			return pgconn.CommandTag{}, err
		}
	}
	return pgconn.CommandTag{}, nil
}

func (f *fakeDB) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	f.queries = append(f.queries, sqlCall{sql: sql, args: args})
	if f.queryRowFn != nil {
		if row := f.queryRowFn(sql, args); row != nil {
			return row
		}
	}
	return &fakeRow{err: pgx.ErrNoRows}
}

func (f *fakeDB) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	f.queries = append(f.queries, sqlCall{sql: sql, args: args})
	if f.queryFn != nil {
		return f.queryFn(sql, args)
	}
	return &fakeRows{}, nil
}

func (f *fakeDB) Begin(context.Context) (pgx.Tx, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeDB) Ping(context.Context) error { return nil }

func (f *fakeDB) Close() {}

func (f *fakeDB) execContaining(fragment string) []sqlCall {
	var out []sqlCall
	for _, c := range f.execs {
		if strings.Contains(c.sql, fragment) {
			out = append(out, c)
		}
	}
	return out
}

type fakeRow struct {
	values []any
	err    error
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

type fakeRows struct {
	rows [][]any
	idx  int
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return nil }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	r.idx++
	return r.idx <= len(r.rows)
}

func (r *fakeRows) Scan(dest ...any) error {
	return scanInto(r.rows[r.idx-1], dest)
}

func scanInto(src []any, dest []any) error {
	if len(src) != len(dest) {
		return fmt.Errorf("scan: %d values for %d targets", len(src), len(dest))
	}
	for i, v := range src {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *int64:
			*d = v.(int64)
		case *bool:
			*d = v.(bool)
		default:
			return fmt.Errorf("scan: unsupported target %T", dest[i])
		}
	}
	return nil
}
