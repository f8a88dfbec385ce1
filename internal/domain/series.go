package domain

import (
	"sort"
	"time"
)

// Final-assembly trim band, deliberately wider than the detection band so
// valid extreme readings survive while sensor error codes (9999, -9999) drop.
const (
	trimMax = 1000
	trimMin = -100
)

// assemblyAttempts caps how far down the temperature ranking assembly falls
// back when the top candidate yields no readings.
const assemblyAttempts = 3

// Point is one cleaned reading. Timestamps are naive instants carried in UTC.
type Point struct {
	Timestamp   time.Time
	Temperature float64
}

// Series is a cleaned, timestamp-sorted run of readings.
type Series []Point

// Provenance records which columns the series was assembled from.
type Provenance struct {
	TimeColumn        string
	PairColumn        string
	TemperatureColumn string
}

// TimeLabel is the provenance's time source as shown to the uploader:
// the column name, or "data+hora" style when two columns were combined.
func (p Provenance) TimeLabel() string {
	if p.PairColumn != "" {
		return p.TimeColumn + "+" + p.PairColumn
	}
	return p.TimeColumn
}

// AssembleSeries pairs the detected timestamps with the best-ranked
// temperature column, dropping rows where either side is missing and trimming
// implausible magnitudes. When a candidate yields an empty series the next
// ranked column is tried, up to three. The result is sorted by timestamp
// (stable, so equal timestamps keep row order).
func AssembleSeries(t *Table, det TimeDetection, ranking []ColumnScore) (Series, Provenance, error) {
	attempts := ranking
	if len(attempts) > assemblyAttempts {
		attempts = attempts[:assemblyAttempts]
	}

	var tried []string
	for _, cand := range attempts {
		if cand.Column == det.Column || cand.Column == det.PairColumn {
			continue
		}
		tried = append(tried, cand.Column)
		series := assembleFrom(det.Timestamps, t.Column(cand.Column))
		if len(series) == 0 {
			continue
		}
		sort.SliceStable(series, func(a, b int) bool {
			return series[a].Timestamp.Before(series[b].Timestamp)
		})
		prov := Provenance{
			TimeColumn:        det.Column,
			PairColumn:        det.PairColumn,
			TemperatureColumn: cand.Column,
		}
		return series, prov, nil
	}

	return nil, Provenance{}, &NoUsableSeriesError{
		TimeColumn:         det.Column,
		PairColumn:         det.PairColumn,
		TemperatureColumns: tried,
		Columns:            t.Columns,
	}
}

func assembleFrom(stamps []time.Time, cells []Cell) Series {
	var series Series
	for i, ts := range stamps {
		if ts.IsZero() || i >= len(cells) {
			continue
		}
		temp, ok := CleanNumericCell(cells[i])
		if !ok || temp > trimMax || temp < trimMin {
			continue
		}
		series = append(series, Point{Timestamp: ts, Temperature: temp})
	}
	return series
}

// FilterRange keeps points within the inclusive [start, end] window. A nil
// bound is open on that side.
func (s Series) FilterRange(start, end *time.Time) Series {
	var out Series
	for _, p := range s {
		if start != nil && p.Timestamp.Before(*start) {
			continue
		}
		if end != nil && p.Timestamp.After(*end) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Stats summarizes a series. Start and End are the first and last timestamps
// of the sorted series, not the requested range bounds.
type Stats struct {
	Min               float64
	Max               float64
	Mean              float64
	Count             int
	Start             time.Time
	End               time.Time
	TimeColumn        string
	TemperatureColumn string
	ProcessedAt       time.Time
}

// Summarize computes stats over a non-empty sorted series.
func Summarize(s Series, prov Provenance) Stats {
	st := Stats{
		Min:               s[0].Temperature,
		Max:               s[0].Temperature,
		Count:             len(s),
		Start:             s[0].Timestamp,
		End:               s[len(s)-1].Timestamp,
		TimeColumn:        prov.TimeLabel(),
		TemperatureColumn: prov.TemperatureColumn,
		ProcessedAt:       clock.Now().UTC(),
	}
	var sum float64
	for _, p := range s {
		if p.Temperature < st.Min {
			st.Min = p.Temperature
		}
		if p.Temperature > st.Max {
			st.Max = p.Temperature
		}
		sum += p.Temperature
	}
	st.Mean = sum / float64(len(s))
	return st
}

// ResampleHourly buckets the series into absolute hours (truncated, not
// relative to the first point) and averages each bucket. Hours with no
// readings are omitted rather than emitted as gaps.
func ResampleHourly(s Series) Series {
	if len(s) == 0 {
		return nil
	}
	type bucket struct {
		sum   float64
		count int
	}
	buckets := make(map[time.Time]*bucket)
	for _, p := range s {
		h := p.Timestamp.Truncate(time.Hour)
		b := buckets[h]
		if b == nil {
			b = &bucket{}
			buckets[h] = b
		}
		b.sum += p.Temperature
		b.count++
	}

	out := make(Series, 0, len(buckets))
	for h, b := range buckets {
		out = append(out, Point{Timestamp: h, Temperature: b.sum / float64(b.count)})
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Timestamp.Before(out[b].Timestamp) })
	return out
}
