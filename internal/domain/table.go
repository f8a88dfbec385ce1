package domain

// Cell is a single spreadsheet value. Decoders produce string, float64, or
// nil (missing); the heuristics accept all three everywhere.
type Cell any

// Table is a decoded upload: one header row and the data rows beneath it.
// Rows may be ragged; Column pads short rows with nil.
type Table struct {
	Columns []string
	Rows    [][]Cell
}

// Normalize returns a copy of the table with canonical column names and the
// empty rows and columns dropped. When two headers normalize to the same
// name, the first column in table order keeps it and later duplicates are
// dropped.
func (t *Table) Normalize() *Table {
	type keep struct {
		name string
		idx  int
	}
	seen := make(map[string]bool, len(t.Columns))
	var kept []keep
	for i, raw := range t.Columns {
		name := NormalizeText(raw)
		if name == "" || seen[name] {
			continue
		}
		if allNil(t.column(i)) {
			continue
		}
		seen[name] = true
		kept = append(kept, keep{name: name, idx: i})
	}

	out := &Table{Columns: make([]string, len(kept))}
	for i, k := range kept {
		out.Columns[i] = k.name
	}
	for _, row := range t.Rows {
		projected := make([]Cell, len(kept))
		empty := true
		for i, k := range kept {
			if k.idx < len(row) {
				projected[i] = row[k.idx]
			}
			if !isEmptyCell(projected[i]) {
				empty = false
			}
		}
		if !empty {
			out.Rows = append(out.Rows, projected)
		}
	}
	return out
}

// Column returns the named column's cells in row order, or nil when the
// column does not exist. Short rows contribute nil cells.
func (t *Table) Column(name string) []Cell {
	for i, c := range t.Columns {
		if c == name {
			return t.column(i)
		}
	}
	return nil
}

func (t *Table) column(i int) []Cell {
	cells := make([]Cell, len(t.Rows))
	for r, row := range t.Rows {
		if i < len(row) {
			cells[r] = row[i]
		}
	}
	return cells
}

func allNil(cells []Cell) bool {
	for _, c := range cells {
		if !isEmptyCell(c) {
			return false
		}
	}
	return true
}

func isEmptyCell(c Cell) bool {
	switch t := c.(type) {
	case nil:
		return true
	case string:
		return t == ""
	default:
		return false
	}
}
