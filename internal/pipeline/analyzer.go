package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/templog-ingest-service/internal/domain"
	"github.com/couchcryptid/templog-ingest-service/internal/observability"
	"github.com/couchcryptid/templog-ingest-service/internal/tabular"
)

// Publisher forwards assembled readings to a downstream sink.
type Publisher interface {
	PublishSeries(ctx context.Context, filename string, series domain.Series, stats domain.Stats) error
}

// InvalidRangeError reports a start/end bound that did not parse as a
// day-first timestamp.
type InvalidRangeError struct {
	Field string
	Value string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid %s bound: %q is not a recognized timestamp", e.Field, e.Value)
}

// Result is a fully processed upload: the cleaned series, its hourly
// resample, summary stats, and the column provenance.
type Result struct {
	Series     domain.Series
	Hourly     domain.Series
	Stats      domain.Stats
	Provenance domain.Provenance
}

// Analyzer runs the decode-detect-assemble pipeline for one upload at a time.
// It holds no per-request state, so a single instance serves concurrent
// requests.
type Analyzer struct {
	logger    *slog.Logger
	metrics   *observability.Metrics
	publisher Publisher
}

// New creates an Analyzer. publisher may be nil when sink publishing is
// disabled.
func New(logger *slog.Logger, metrics *observability.Metrics, publisher Publisher) *Analyzer {
	return &Analyzer{logger: logger, metrics: metrics, publisher: publisher}
}

// CheckReadiness reports whether the analyzer can serve traffic. The pipeline
// is stateless, so readiness matches liveness.
func (a *Analyzer) CheckReadiness(_ context.Context) error {
	return nil
}

// Analyze decodes the upload, detects the time and temperature columns,
// assembles the cleaned series, applies the optional start/end window, and
// summarizes. Assembled readings are forwarded to the publisher when one is
// configured; publish failures are logged and counted but never fail the
// upload.
func (a *Analyzer) Analyze(ctx context.Context, filename string, data []byte, startRaw, endRaw string) (*Result, error) {
	began := time.Now()
	a.metrics.UploadsTotal.Inc()

	start, err := a.parseBound("start", startRaw)
	if err != nil {
		return nil, a.fail("bad_range", err)
	}
	end, err := a.parseBound("end", endRaw)
	if err != nil {
		return nil, a.fail("bad_range", err)
	}

	raw, err := tabular.Decode(filename, data)
	if err != nil {
		return nil, a.fail("unreadable", err)
	}

	tbl := raw.Normalize()
	if len(tbl.Columns) < 2 {
		return nil, a.fail("too_few_columns", &domain.TooFewColumnsError{Columns: tbl.Columns})
	}

	det := domain.DetectTimeColumn(tbl)
	ranking := domain.RankTemperatureColumns(tbl)

	series, prov, err := domain.AssembleSeries(tbl, det, ranking)
	if err != nil {
		return nil, a.fail("no_series", err)
	}
	if len(ranking) > 0 && prov.TemperatureColumn != ranking[0].Column {
		a.metrics.FallbackApplied.Inc()
		a.logger.Info("temperature column fallback applied",
			"file", filename,
			"primary", ranking[0].Column,
			"used", prov.TemperatureColumn,
		)
	}

	if start != nil || end != nil {
		series = series.FilterRange(start, end)
		if len(series) == 0 {
			err := fmt.Errorf("no readings within the requested range: %w", &domain.NoUsableSeriesError{
				TimeColumn:         prov.TimeColumn,
				PairColumn:         prov.PairColumn,
				TemperatureColumns: []string{prov.TemperatureColumn},
				Columns:            tbl.Columns,
			})
			return nil, a.fail("no_series", err)
		}
	}

	stats := domain.Summarize(series, prov)
	res := &Result{
		Series:     series,
		Hourly:     domain.ResampleHourly(series),
		Stats:      stats,
		Provenance: prov,
	}

	a.metrics.PointsAssembled.Observe(float64(len(series)))
	a.metrics.ProcessingDuration.Observe(time.Since(began).Seconds())
	a.logger.Info("upload processed",
		"file", filename,
		"points", len(series),
		"time_col", stats.TimeColumn,
		"temp_col", stats.TemperatureColumn,
	)

	a.publish(ctx, filename, res)
	return res, nil
}

func (a *Analyzer) parseBound(field, raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	ts, ok := domain.ParseDayFirst(raw)
	if !ok {
		return nil, &InvalidRangeError{Field: field, Value: raw}
	}
	return &ts, nil
}

func (a *Analyzer) fail(reason string, err error) error {
	a.metrics.UploadFailures.WithLabelValues(reason).Inc()
	a.logger.Warn("upload rejected", "reason", reason, "error", err)
	return err
}

func (a *Analyzer) publish(ctx context.Context, filename string, res *Result) {
	if a.publisher == nil {
		return
	}
	if err := a.publisher.PublishSeries(ctx, filename, res.Series, res.Stats); err != nil {
		a.metrics.PublishErrors.Inc()
		a.logger.Error("sink publish failed", "file", filename, "error", err)
		return
	}
	a.metrics.PointsPublished.Add(float64(len(res.Series)))
}
