package domain

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes characters and removes combining marks, so
// "Temperatura Média" and "temperatura media" normalize identically.
// Chained transformers carry internal buffers, so one is built per call
// rather than shared across concurrent requests.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// NormalizeText canonicalizes a cell for header matching and comparison:
// lowercase, accents stripped, unit symbols folded to a plain "c", all
// whitespace removed. Numeric cells are stringified first so a header row
// that excelize read as floats still matches by name.
func NormalizeText(v Cell) string {
	s := stringify(v)
	s = strings.ToLower(strings.TrimSpace(s))
	if folded, _, err := transform.String(stripMarks(), s); err == nil {
		s = folded
	}
	// NFKD expands "℃" to "°C"; lowercase again before folding the symbols.
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "℃", "c")
	s = strings.ReplaceAll(s, "°c", "c")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\n", "")
	s = strings.ReplaceAll(s, "\t", "")
	return s
}

func stringify(v Cell) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
