// Package table renders query results as aligned text tables.
package table

import (
	"fmt"
	"reflect"
)

// Table is a titled grid of rendered cells. Every row is expected to have one
// cell per column; short rows are padded with empty cells.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// Column pairs a column name with the formatter that renders it from a typed
// row.
type Column[T any] struct {
	Name  string
	Value func(T) string
}

// Build renders typed rows through cols.
func Build[T any](title string, cols []Column[T], rows []T) Table {
	t := Table{Title: title, Columns: make([]string, len(cols))}
	for i, c := range cols {
		t.Columns[i] = c.Name
	}
	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			cells[i] = c.Value(r)
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// Cell is one named value of an ad-hoc row.
type Cell struct {
	Key   string
	Value any
}

// Row is an ordered mapping of column name to scalar.
type Row []Cell

// Get returns the value stored under key.
func (r Row) Get(key string) (any, bool) {
	for _, c := range r {
		if c.Key == key {
			return c.Value, true
		}
	}
	return nil, false
}

// FromRows builds a table from ad-hoc rows. The columns are the keys of the
// first row in order; a key missing from a later row renders empty.
func FromRows(title string, rows []Row) Table {
	t := Table{Title: title}
	if len(rows) == 0 {
		return t
	}
	for _, c := range rows[0] {
		t.Columns = append(t.Columns, c.Key)
	}
	t.Rows = make([][]string, 0, len(rows))
	for _, r := range rows {
		cells := make([]string, len(t.Columns))
		for i, key := range t.Columns {
			if v, ok := r.Get(key); ok {
				cells[i] = Stringify(v)
			}
		}
		t.Rows = append(t.Rows, cells)
	}
	return t
}

// Stringify renders a scalar for display. nil and nil pointers render as the
// empty string; pointers are dereferenced.
func Stringify(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprint(rv.Interface())
}
