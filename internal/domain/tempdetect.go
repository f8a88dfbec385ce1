package domain

import (
	"regexp"
	"sort"
)

var tempNameRe = regexp.MustCompile(`(temp|temperatura|°c|celsius|℃|\bt\b)`)

// Temperature-column scoring weights. Name hints matter, but a plausible
// numeric signal matters more, so an unlabeled column of readings still beats
// a "Temp Alarm" column of flags.
const (
	tempNameWeight      = 2.0
	tempNumericWeight   = 1.5
	tempPlausibleWeight = 2.5
)

// Plausibility band for the column median, in °C.
const (
	plausibleMin = -50
	plausibleMax = 100
)

// RankTemperatureColumns orders the table's columns by how likely each is to
// hold the temperature signal: a weighted sum of a name match, the fraction
// of cells that clean to a number, and whether the cleaned median falls in a
// plausible band.
func RankTemperatureColumns(t *Table) []ColumnScore {
	return rankColumns(t, scoreTemperatureColumn)
}

func scoreTemperatureColumn(name string, cells []Cell) float64 {
	var score float64
	if tempNameRe.MatchString(name) {
		score += tempNameWeight
	}

	values := make([]float64, 0, len(cells))
	for _, c := range cells {
		if f, ok := CleanNumericCell(c); ok {
			values = append(values, f)
		}
	}
	if len(cells) > 0 {
		score += tempNumericWeight * float64(len(values)) / float64(len(cells))
	}
	if len(values) > 0 {
		if m := median(values); m >= plausibleMin && m <= plausibleMax {
			score += tempPlausibleWeight
		}
	}
	return score
}

func median(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
