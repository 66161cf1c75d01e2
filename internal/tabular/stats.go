package tabular

import "csvtool/internal/model"

// ColumnStats aggregates one numeric column, skipping missing values.
// With zero non-missing values the result is {Count: 0, Sum: 0} and nil
// Min/Max/Mean, which serialize as JSON null.
func (t *Table) ColumnStats(name string) model.ColumnStats {
	s := t.df.Col(name)

	var st model.ColumnStats
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		v := e.Float()
		if st.Count == 0 {
			lo, hi := v, v
			st.Min, st.Max = &lo, &hi
		} else {
			if v < *st.Min {
				*st.Min = v
			}
			if v > *st.Max {
				*st.Max = v
			}
		}
		st.Sum += v
		st.Count++
	}
	if st.Count > 0 {
		mean := st.Sum / float64(st.Count)
		st.Mean = &mean
	}
	return st
}

// Stats aggregates every numeric column. The returned map has exactly one
// entry per element of NumericColumns.
func (t *Table) Stats() map[string]model.ColumnStats {
	out := make(map[string]model.ColumnStats)
	for _, name := range t.NumericColumns() {
		out[name] = t.ColumnStats(name)
	}
	return out
}
