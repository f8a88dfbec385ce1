package domain_test

import (
	"testing"
	"time"

	"github.com/couchcryptid/templog-ingest-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDayFirst(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Cell
		want time.Time
		ok   bool
	}{
		{
			name: "day first slash with seconds",
			in:   "01/02/2024 10:30:00",
			want: time.Date(2024, time.February, 1, 10, 30, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "day first slash no seconds",
			in:   "01/02/2024 10:30",
			want: time.Date(2024, time.February, 1, 10, 30, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "bare day first date",
			in:   "15/03/2024",
			want: time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "dash separated",
			in:   "01-02-2024 08:00",
			want: time.Date(2024, time.February, 1, 8, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "dot separated",
			in:   "01.02.2024",
			want: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "iso date time",
			in:   "2024-02-01 10:00:00",
			want: time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "iso t separator",
			in:   "2024-02-01T10:00:00",
			want: time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "excel serial noon",
			in:   45323.5, // 2024-02-01 12:00
			want: time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{
			name: "excel serial as string",
			in:   "45323.5", // how spreadsheet decoding renders an unformatted date cell
			want: time.Date(2024, time.February, 1, 12, 0, 0, 0, time.UTC),
			ok:   true,
		},
		{name: "small float is a measurement", in: 23.5, ok: false},
		{name: "small numeric string is a measurement", in: "23.5", ok: false},
		{name: "huge float out of window", in: 99999.0, ok: false},
		{name: "huge numeric string out of window", in: "99999", ok: false},
		{name: "garbage string", in: "not a date", ok: false},
		{name: "empty string", in: "", ok: false},
		{name: "nil", in: nil, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ParseDayFirst(tt.in)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseDayFirst_DayFirstBeatsMonthFirst(t *testing.T) {
	// 01/02 is February 1st, never January 2nd.
	got, ok := domain.ParseDayFirst("01/02/2024")
	require.True(t, ok)
	assert.Equal(t, time.February, got.Month())
	assert.Equal(t, 1, got.Day())
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		name string
		in   domain.Cell
		want time.Duration
		ok   bool
	}{
		{"clock with seconds", "10:30:15", 10*time.Hour + 30*time.Minute + 15*time.Second, true},
		{"clock no seconds", "08:05", 8*time.Hour + 5*time.Minute, true},
		{"day fraction noon", 0.5, 12 * time.Hour, true},
		{"day fraction noon as string", "0.5", 12 * time.Hour, true},
		{"day fraction zero", 0.0, 0, true},
		{"fraction out of range", 1.5, 0, false},
		{"fraction string out of range", "1.5", 0, false},
		{"garbage", "soon", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := domain.ParseTimeOfDay(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
