package domain

import (
	"regexp"
	"strings"
	"time"
)

var timeNameRe = regexp.MustCompile(`(timestamp|datahora|date_time|datetime|tempo|time|\bdata\b|\bhora\b)`)

// pairThreshold is the single-column parse fraction below which detection
// falls back to combining a separate date column with a time-of-day column.
const pairThreshold = 0.60

// TimeDetection is the outcome of time-column detection: the chosen column
// (plus the paired time-of-day column when two were combined) and the parsed
// timestamp per row. A zero Timestamps entry means that row's cell did not
// parse.
type TimeDetection struct {
	Column     string
	PairColumn string
	Timestamps []time.Time
	Score      float64
}

// DetectTimeColumn picks the column whose cells best parse as timestamps.
// Candidates are the name-matched columns, or every column when no name
// matches. When the best single column parses fewer than 60% of its rows, a
// date column is paired with a time-of-day column and the pair wins if it
// parses at least as well.
func DetectTimeColumn(t *Table) TimeDetection {
	candidates := namedTimeCandidates(t)
	if len(candidates) == 0 {
		candidates = t.Columns
	}

	best := TimeDetection{Score: -1}
	for _, name := range candidates {
		stamps, score := parseColumn(t.Column(name))
		if score > best.Score {
			best = TimeDetection{Column: name, Timestamps: stamps, Score: score}
		}
	}

	if best.Score < pairThreshold {
		if pair, ok := detectDateTimePair(t); ok && pair.Score >= best.Score {
			return pair
		}
	}
	return best
}

func namedTimeCandidates(t *Table) []string {
	var names []string
	for _, c := range t.Columns {
		if timeNameRe.MatchString(c) {
			names = append(names, c)
		}
	}
	return names
}

func parseColumn(cells []Cell) ([]time.Time, float64) {
	stamps := make([]time.Time, len(cells))
	parsed := 0
	for i, c := range cells {
		if ts, ok := ParseDayFirst(c); ok {
			stamps[i] = ts
			parsed++
		}
	}
	if len(cells) == 0 {
		return stamps, 0
	}
	return stamps, float64(parsed) / float64(len(cells))
}

// detectDateTimePair combines a date-bearing column with a clock-time column.
// Vendor exports often split "Data" and "Hora" into separate columns.
func detectDateTimePair(t *Table) (TimeDetection, bool) {
	var dateCols, clockCols []string
	for _, c := range t.Columns {
		if strings.Contains(c, "data") {
			dateCols = append(dateCols, c)
		}
		if strings.Contains(c, "hora") || strings.Contains(c, "time") || strings.Contains(c, "tempo") {
			clockCols = append(clockCols, c)
		}
	}

	best := TimeDetection{Score: -1}
	for _, dc := range dateCols {
		for _, cc := range clockCols {
			if dc == cc {
				continue
			}
			stamps, score := combineDateAndClock(t.Column(dc), t.Column(cc))
			if score > best.Score {
				best = TimeDetection{Column: dc, PairColumn: cc, Timestamps: stamps, Score: score}
			}
		}
	}
	return best, best.Score >= 0
}

// combineDateAndClock builds timestamps from a date cell plus a clock cell.
// A row counts as parsed only when both sides parse.
func combineDateAndClock(dates, clocks []Cell) ([]time.Time, float64) {
	n := len(dates)
	stamps := make([]time.Time, n)
	parsed := 0
	for i := 0; i < n; i++ {
		day, ok := ParseDayFirst(dates[i])
		if !ok || i >= len(clocks) {
			continue
		}
		offset, ok := ParseTimeOfDay(clocks[i])
		if !ok {
			continue
		}
		stamps[i] = time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC).Add(offset)
		parsed++
	}
	if n == 0 {
		return stamps, 0
	}
	return stamps, float64(parsed) / float64(n)
}
