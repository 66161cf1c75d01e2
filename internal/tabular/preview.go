package tabular

import (
	"github.com/go-gota/gota/series"

	"csvtool/internal/model"
)

// Preview returns the first min(rows, limit) rows rendered for display:
// numeric cells as float64, text cells as strings, missing cells as "".
// A non-positive limit yields an empty preview.
func (t *Table) Preview(limit int) []model.PreviewRow {
	if t.headerOnly {
		return []model.PreviewRow{}
	}

	n := t.df.Nrow()
	if limit < n {
		n = limit
	}
	if n < 0 {
		n = 0
	}

	names := t.df.Names()
	cols := make([]series.Series, len(names))
	for j, name := range names {
		cols[j] = t.df.Col(name)
	}

	rows := make([]model.PreviewRow, 0, n)
	for i := 0; i < n; i++ {
		row := make(model.PreviewRow, len(names))
		for j, name := range names {
			e := cols[j].Elem(i)
			switch {
			case e.IsNA():
				row[name] = ""
			case isNumeric(cols[j].Type()):
				row[name] = e.Float()
			default:
				row[name] = e.String()
			}
		}
		rows = append(rows, row)
	}
	return rows
}
