// Package tabular wraps the gota dataframe with the small surface the
// analyze pipeline needs: parse, numeric column detection, per-column
// statistics, and a display preview.
package tabular

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Table is an immutable, request-scoped view over a parsed CSV document.
// A document with a header row and no data rows is represented without a
// backing dataframe, since the dataframe library rejects empty frames.
type Table struct {
	df         dataframe.DataFrame
	names      []string
	headerOnly bool
}

// Parse reads decoded CSV text into a Table using the given delimiter.
// Column names come from the first row; column types are inferred by the
// dataframe library: a column is numeric when every non-empty cell parses
// as an integer or a float. A header row with no data rows yields a valid
// zero-row Table.
func Parse(text string, delimiter rune) (*Table, error) {
	if names, ok := headerOnly(text, delimiter); ok {
		return &Table{names: names, headerOnly: true}, nil
	}

	df := dataframe.ReadCSV(
		strings.NewReader(text),
		dataframe.WithDelimiter(delimiter),
		dataframe.HasHeader(true),
	)
	if df.Err != nil {
		return nil, df.Err
	}
	return &Table{df: df}, nil
}

// headerOnly reports whether text holds exactly one record, returning its
// fields when so. Any read error defers to the dataframe parser so the
// client sees its message.
func headerOnly(text string, delimiter rune) ([]string, bool) {
	r := csv.NewReader(strings.NewReader(text))
	r.Comma = delimiter

	header, err := r.Read()
	if err != nil {
		return nil, false
	}
	if _, err := r.Read(); err != io.EOF {
		return nil, false
	}
	return header, true
}

// Rows returns the number of data rows (header excluded).
func (t *Table) Rows() int {
	if t.headerOnly {
		return 0
	}
	return t.df.Nrow()
}

// Cols returns the number of columns.
func (t *Table) Cols() int {
	if t.headerOnly {
		return len(t.names)
	}
	return t.df.Ncol()
}

// Columns returns the column names in original order.
func (t *Table) Columns() []string {
	if t.headerOnly {
		return t.names
	}
	return t.df.Names()
}

// NumericColumns returns, in table order, the columns whose inferred type
// is numeric. Boolean columns are not numeric, and a column with no values
// at all has no numeric evidence.
func (t *Table) NumericColumns() []string {
	if t.headerOnly {
		return []string{}
	}
	cols := make([]string, 0, t.df.Ncol())
	for _, name := range t.df.Names() {
		if isNumeric(t.df.Col(name).Type()) {
			cols = append(cols, name)
		}
	}
	return cols
}

func isNumeric(tp series.Type) bool {
	return tp == series.Int || tp == series.Float
}
