// Command inspect runs the detection pipeline over local logger exports and
// prints what the service would decide: which columns were picked, the
// cleaned series, summary stats, and the hourly resample. Useful when a
// vendor ships a new export format and detection picks the wrong column.
//
// Usage:
//
//	go run ./cmd/inspect [-start "01/02/2024 10:00"] [-end "01/02/2024 18:00"] [-points] file.csv [file2.xlsx ...]
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/couchcryptid/templog-ingest-service/internal/domain"
	"github.com/couchcryptid/templog-ingest-service/internal/tabular"
)

const isoLayout = "2006-01-02T15:04:05"

func main() {
	startRaw := flag.String("start", "", "inclusive range start (day-first or ISO)")
	endRaw := flag.String("end", "", "inclusive range end (day-first or ISO)")
	showPoints := flag.Bool("points", false, "print every cleaned reading")
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(1)
	}

	start, ok := parseBound(*startRaw)
	if !ok {
		fmt.Fprintf(os.Stderr, "FATAL: -start %q is not a recognized timestamp\n", *startRaw)
		os.Exit(1)
	}
	end, ok := parseBound(*endRaw)
	if !ok {
		fmt.Fprintf(os.Stderr, "FATAL: -end %q is not a recognized timestamp\n", *endRaw)
		os.Exit(1)
	}

	code := 0
	for _, path := range flag.Args() {
		if err := inspect(path, start, end, *showPoints); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			code = 1
		}
	}
	os.Exit(code)
}

func parseBound(raw string) (*time.Time, bool) {
	if raw == "" {
		return nil, true
	}
	ts, ok := domain.ParseDayFirst(raw)
	if !ok {
		return nil, false
	}
	return &ts, true
}

func inspect(path string, start, end *time.Time, showPoints bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	raw, err := tabular.Decode(filepath.Base(path), data)
	if err != nil {
		return err
	}

	fmt.Printf("=== %s ===\n", path)
	fmt.Printf("columns (raw):        %v\n", raw.Columns)

	tbl := raw.Normalize()
	fmt.Printf("columns (normalized): %v\n", tbl.Columns)
	if len(tbl.Columns) < 2 {
		return &domain.TooFewColumnsError{Columns: tbl.Columns}
	}

	det := domain.DetectTimeColumn(tbl)
	fmt.Printf("time column:          %s (score %.2f)\n", timeLabel(det), det.Score)

	ranking := domain.RankTemperatureColumns(tbl)
	fmt.Println("temperature ranking:")
	for i, cand := range ranking {
		fmt.Printf("  %d. %-24s %.2f\n", i+1, cand.Column, cand.Score)
	}

	series, prov, err := domain.AssembleSeries(tbl, det, ranking)
	if err != nil {
		return err
	}
	if prov.TemperatureColumn != ranking[0].Column {
		fmt.Printf("note: fell back from %q to %q\n", ranking[0].Column, prov.TemperatureColumn)
	}

	if start != nil || end != nil {
		before := len(series)
		series = series.FilterRange(start, end)
		fmt.Printf("range filter:         %d -> %d points\n", before, len(series))
		if len(series) == 0 {
			return fmt.Errorf("no readings within the requested range")
		}
	}

	stats := domain.Summarize(series, prov)
	fmt.Printf("points:               %d\n", stats.Count)
	fmt.Printf("span:                 %s .. %s\n", stats.Start.Format(isoLayout), stats.End.Format(isoLayout))
	fmt.Printf("temperature:          min %.2f / avg %.2f / max %.2f\n", stats.Min, stats.Mean, stats.Max)

	hourly := domain.ResampleHourly(series)
	fmt.Printf("hourly buckets:       %d\n", len(hourly))
	for _, p := range hourly {
		fmt.Printf("  %s  %7.2f\n", p.Timestamp.Format(isoLayout), p.Temperature)
	}

	if showPoints {
		fmt.Println("readings:")
		for _, p := range series {
			fmt.Printf("  %s  %7.2f\n", p.Timestamp.Format(isoLayout), p.Temperature)
		}
	}
	fmt.Println()
	return nil
}

func timeLabel(det domain.TimeDetection) string {
	if det.PairColumn != "" {
		return det.Column + "+" + det.PairColumn
	}
	return det.Column
}
