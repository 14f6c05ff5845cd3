package repo

import (
	"context"
	"fmt"
	"reflect"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

type testRowsBase struct{}

func (testRowsBase) CommandTag() pgconn.CommandTag { return pgconn.CommandTag{} }

func (testRowsBase) Conn() *pgx.Conn { return nil }

func (testRowsBase) FieldDescriptions() []pgconn.FieldDescription { return nil }

func (testRowsBase) Values() ([]any, error) {
	return nil, fmt.Errorf("values not supported in test rows")
}

func (testRowsBase) RawValues() [][]byte { return nil }

// sliceRows plays back fixture rows through the pgx.Rows interface.
type sliceRows struct {
	testRowsBase
	rows [][]any
	idx  int
}

func (r *sliceRows) Close()     {}
func (r *sliceRows) Err() error { return nil }

func (r *sliceRows) Next() bool {
	r.idx++
	return r.idx <= len(r.rows)
}

func (r *sliceRows) Scan(dest ...any) error {
	return assign(r.rows[r.idx-1], dest)
}

func assign(src []any, dest []any) error {
	if len(src) != len(dest) {
		return fmt.Errorf("scan: %d values for %d destinations", len(src), len(dest))
	}
	for i, v := range src {
		target := reflect.ValueOf(dest[i]).Elem()
		if v == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		value := reflect.ValueOf(v)
		if !value.Type().AssignableTo(target.Type()) {
			if !value.Type().ConvertibleTo(target.Type()) {
				return fmt.Errorf("scan: cannot assign %T to %s", v, target.Type())
			}
			value = value.Convert(target.Type())
		}
		target.Set(value)
	}
	return nil
}

// fakeDB records the last query and plays back configured results.
type fakeDB struct {
	lastQuery string
	lastArgs  []any

	row  simpleRow
	rows [][]any
	err  error
}

func (f *fakeDB) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.lastQuery, f.lastArgs = query, args
	return pgconn.CommandTag{}, f.err
}

func (f *fakeDB) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.lastQuery, f.lastArgs = query, args
	if f.err != nil {
		return simpleRow{scan: func(...any) error { return f.err }}
	}
	return f.row
}

func (f *fakeDB) Query(_ context.Context, query string, args ...any) (pgx.Rows, error) {
	f.lastQuery, f.lastArgs = query, args
	if f.err != nil {
		return nil, f.err
	}
	return &sliceRows{rows: f.rows}, nil
}

func scanValues(values ...any) simpleRow {
	return simpleRow{scan: func(dest ...any) error {
		return assign(values, dest)
	}}
}
