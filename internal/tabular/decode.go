package tabular

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/couchcryptid/templog-ingest-service/internal/domain"
)

// DecodeError reports that no supported format variant could read the upload.
// Attempts lists each variant tried, in order.
type DecodeError struct {
	Filename string
	Attempts []string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %q as a supported tabular format (tried %s)",
		e.Filename, strings.Join(e.Attempts, ", "))
}

// Decode parses an upload into a table, choosing the strategy by file
// extension. Unknown extensions try the spreadsheet reader first and fall
// back to the CSV matrix, since loggers ship files with arbitrary suffixes.
func Decode(filename string, data []byte) (*domain.Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv", ".txt":
		return decodeCSV(filename, data)
	case ".xlsx", ".xlsm":
		return decodeSpreadsheet(filename, data)
	default:
		// Vendor tools export CSV text under ".xls" or arbitrary suffixes.
		// Try the real spreadsheet reader, then the CSV matrix.
		tbl, err := decodeSpreadsheet(filename, data)
		if err == nil {
			return tbl, nil
		}
		return decodeCSV(filename, data)
	}
}

// tableFromRows builds a table from a header row plus data rows. Cells are
// trimmed; blanks become nil so downstream cleaning treats them as missing.
func tableFromRows(rows [][]string) (*domain.Table, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("no rows")
	}
	tbl := &domain.Table{Columns: rows[0]}
	for _, row := range rows[1:] {
		cells := make([]domain.Cell, len(row))
		for i, v := range row {
			if trimmed := strings.TrimSpace(v); trimmed != "" {
				cells[i] = trimmed
			}
		}
		tbl.Rows = append(tbl.Rows, cells)
	}
	return tbl, nil
}
