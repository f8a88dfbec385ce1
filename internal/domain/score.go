package domain

import "sort"

// ColumnScore is one column's fitness for a role, as judged by a scorer.
type ColumnScore struct {
	Column string
	Score  float64
}

// rankColumns scores every column and returns them best-first. The sort is
// stable, so equal scores keep table column order and detection stays
// deterministic for a given input.
func rankColumns(t *Table, score func(name string, cells []Cell) float64) []ColumnScore {
	ranked := make([]ColumnScore, 0, len(t.Columns))
	for i, name := range t.Columns {
		ranked = append(ranked, ColumnScore{Column: name, Score: score(name, t.column(i))})
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].Score > ranked[b].Score })
	return ranked
}
