package tabular

import (
	"bytes"
	"fmt"

	"github.com/couchcryptid/templog-ingest-service/internal/domain"
	"github.com/xuri/excelize/v2"
)

// decodeSpreadsheet reads the first sheet of an Office Open XML workbook.
// GetRows returns formatted cell strings, so dates and locale-formatted
// numbers arrive the same way they display in the vendor tool.
func decodeSpreadsheet(filename string, data []byte) (*domain.Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &DecodeError{Filename: filename, Attempts: []string{"xlsx"}}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &DecodeError{Filename: filename, Attempts: []string{"xlsx (no sheets)"}}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	tbl, err := tableFromRows(rows)
	if err != nil {
		return nil, &DecodeError{Filename: filename, Attempts: []string{"xlsx (empty sheet)"}}
	}
	return tbl, nil
}
