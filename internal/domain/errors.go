package domain

import (
	"fmt"
	"strings"
)

// TooFewColumnsError reports a table that survived normalization with fewer
// than the two columns the pipeline needs.
type TooFewColumnsError struct {
	Columns []string
}

func (e *TooFewColumnsError) Error() string {
	return fmt.Sprintf("need at least 2 usable columns, got %d (%s)",
		len(e.Columns), strings.Join(e.Columns, ", "))
}

// NoUsableSeriesError reports that no candidate temperature column yielded a
// single valid reading. It carries the detection provenance so the uploader
// can see what was tried.
type NoUsableSeriesError struct {
	TimeColumn         string
	PairColumn         string
	TemperatureColumns []string
	Columns            []string
}

func (e *NoUsableSeriesError) Error() string {
	return fmt.Sprintf("no usable readings: time column %q, temperature candidates [%s], columns [%s]",
		e.TimeColumn, strings.Join(e.TemperatureColumns, ", "), strings.Join(e.Columns, ", "))
}
