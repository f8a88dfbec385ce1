package httpapi

import (
	"errors"
	"io"
	"net/http"

	"github.com/couchcryptid/templog-ingest-service/internal/domain"
	"github.com/couchcryptid/templog-ingest-service/internal/pipeline"
	"github.com/couchcryptid/templog-ingest-service/internal/tabular"
)

// isoLayout is the zoneless ISO-8601 form for naive timestamps, matching how
// logger exports carry them.
const isoLayout = "2006-01-02T15:04:05"

type seriesPoint struct {
	Timestamp   string  `json:"timestamp"`
	Temperature float64 `json:"temperature"`
}

type statsOut struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Avg     float64 `json:"avg"`
	Count   int     `json:"count"`
	Start   string  `json:"start"`
	End     string  `json:"end"`
	TimeCol string  `json:"time_col"`
	TempCol string  `json:"temp_col"`
}

type uploadResponse struct {
	TimeKey string        `json:"time_key"`
	TempKey string        `json:"temp_key"`
	Data    []seriesPoint `json:"data"`
	Hourly  []seriesPoint `json:"hourly"`
	Stats   statsOut      `json:"stats"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleUpload accepts a multipart upload ("file" part, optional "start" and
// "end" form values) and returns the cleaned series, hourly resample, and
// stats.
func (s *Server) handleUpload(analyzer Analyzer, maxBytes int64) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBytes)

		file, header, err := r.FormFile("file")
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "upload exceeds the size limit"})
				return
			}
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "multipart form must include a \"file\" part"})
			return
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "reading upload: " + err.Error()})
			return
		}

		res, err := analyzer.Analyze(r.Context(), header.Filename, data, r.FormValue("start"), r.FormValue("end"))
		if err != nil {
			s.writeAnalyzeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, buildUploadResponse(res))
	}
}

// writeAnalyzeError maps pipeline errors onto status codes. Every condition
// the uploader can fix is a 400 with the diagnostic message; anything else is
// a 500.
func (s *Server) writeAnalyzeError(w http.ResponseWriter, err error) {
	var (
		decodeErr  *tabular.DecodeError
		columnsErr *domain.TooFewColumnsError
		seriesErr  *domain.NoUsableSeriesError
		rangeErr   *pipeline.InvalidRangeError
	)
	switch {
	case errors.As(err, &decodeErr),
		errors.As(err, &columnsErr),
		errors.As(err, &seriesErr),
		errors.As(err, &rangeErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		s.logger.Error("upload processing failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func buildUploadResponse(res *pipeline.Result) uploadResponse {
	return uploadResponse{
		TimeKey: "timestamp",
		TempKey: "temperature",
		Data:    toPoints(res.Series),
		Hourly:  toPoints(res.Hourly),
		Stats: statsOut{
			Min:     res.Stats.Min,
			Max:     res.Stats.Max,
			Avg:     res.Stats.Mean,
			Count:   res.Stats.Count,
			Start:   res.Stats.Start.Format(isoLayout),
			End:     res.Stats.End.Format(isoLayout),
			TimeCol: res.Stats.TimeColumn,
			TempCol: res.Stats.TemperatureColumn,
		},
	}
}

func toPoints(s domain.Series) []seriesPoint {
	out := make([]seriesPoint, len(s))
	for i, p := range s {
		out[i] = seriesPoint{
			Timestamp:   p.Timestamp.Format(isoLayout),
			Temperature: p.Temperature,
		}
	}
	return out
}
