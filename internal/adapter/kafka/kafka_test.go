package kafka

import (
	"testing"
	"time"

	"github.com/couchcryptid/templog-ingest-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2024, 4, 26, 15, 10, 0, 0, time.UTC)
	point := domain.Point{
		Timestamp:   time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
		Temperature: 23.5,
	}
	stats := domain.Stats{
		TimeColumn:        "datahora",
		TemperatureColumn: "temperatura(c)",
		ProcessedAt:       now,
	}

	msg, err := serializeToMessage("export.csv", point, stats)
	require.NoError(t, err)

	assert.Equal(t, []byte("export.csv"), msg.Key)
	assert.JSONEq(t,
		`{"timestamp":"2024-02-01T10:00:00","temperature":23.5,"source_file":"export.csv"}`,
		string(msg.Value))

	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "time_col", msg.Headers[0].Key)
	assert.Equal(t, []byte("datahora"), msg.Headers[0].Value)
	assert.Equal(t, "temp_col", msg.Headers[1].Key)
	assert.Equal(t, []byte("temperatura(c)"), msg.Headers[1].Value)
	assert.Equal(t, "processed_at", msg.Headers[2].Key)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[2].Value)
}
