package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/templog-ingest-service/internal/config"
	"github.com/couchcryptid/templog-ingest-service/internal/domain"
	kafkago "github.com/segmentio/kafka-go"
)

// isoLayout is the zoneless ISO-8601 form used for naive timestamps.
const isoLayout = "2006-01-02T15:04:05"

// Writer publishes assembled readings to a Kafka topic.
// It implements pipeline.Publisher.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured sink topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaSinkTopic,
		Balancer:     &kafkago.LeastBytes{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// PublishSeries serializes every reading from one upload and publishes them
// in a single WriteMessages call for efficiency. Messages are keyed by the
// source filename so one upload's readings stay on one partition, in order.
func (w *Writer) PublishSeries(ctx context.Context, filename string, series domain.Series, stats domain.Stats) error {
	if len(series) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(series))
	for i := range series {
		msg, err := serializeToMessage(filename, series[i], stats)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	return w.writer.WriteMessages(ctx, msgs...)
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

// reading is the sink wire format for one point.
type reading struct {
	Timestamp   string  `json:"timestamp"`
	Temperature float64 `json:"temperature"`
	SourceFile  string  `json:"source_file"`
}

// serializeToMessage marshals one reading into a Kafka message with
// provenance headers.
func serializeToMessage(filename string, p domain.Point, stats domain.Stats) (kafkago.Message, error) {
	data, err := json.Marshal(reading{
		Timestamp:   p.Timestamp.Format(isoLayout),
		Temperature: p.Temperature,
		SourceFile:  filename,
	})
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize reading: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(filename),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "time_col", Value: []byte(stats.TimeColumn)},
			{Key: "temp_col", Value: []byte(stats.TemperatureColumn)},
			{Key: "processed_at", Value: []byte(stats.ProcessedAt.Format(time.RFC3339))},
		},
	}, nil
}
