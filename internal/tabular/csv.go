package tabular

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"unicode/utf8"

	"github.com/couchcryptid/templog-ingest-service/internal/domain"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var csvDelimiters = []rune{',', ';', '\t', '|'}

// A nil encoding means strict UTF-8; invalid bytes reject the attempt so
// Latin-1 files fall through to the charmap decoders instead of being
// accepted with replacement characters.
var csvEncodings = []struct {
	name string
	enc  encoding.Encoding
}{
	{"utf-8", nil},
	{"latin-1", charmap.ISO8859_1},
	{"cp1252", charmap.Windows1252},
}

// decodeCSV tries every delimiter × encoding combination and accepts the
// first decode that yields at least two columns. A single-column result means
// the delimiter guess was wrong, not that the file is unreadable.
func decodeCSV(filename string, data []byte) (*domain.Table, error) {
	var attempts []string
	for _, delim := range csvDelimiters {
		for _, enc := range csvEncodings {
			tbl, err := readCSV(data, delim, enc.enc)
			if err == nil && len(tbl.Columns) >= 2 {
				return tbl, nil
			}
			attempts = append(attempts, fmt.Sprintf("csv sep=%q enc=%s", delim, enc.name))
		}
	}
	return nil, &DecodeError{Filename: filename, Attempts: attempts}
}

func readCSV(data []byte, delim rune, enc encoding.Encoding) (*domain.Table, error) {
	decoded := data
	if enc == nil {
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("not valid utf-8")
		}
	} else {
		var err error
		decoded, err = enc.NewDecoder().Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("decode encoding: %w", err)
		}
	}
	decoded = bytes.TrimPrefix(decoded, []byte{0xEF, 0xBB, 0xBF}) // UTF-8 BOM

	r := csv.NewReader(bytes.NewReader(decoded))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return tableFromRows(rows)
}
