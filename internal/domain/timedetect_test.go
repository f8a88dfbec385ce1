package domain_test

import (
	"testing"
	"time"

	"github.com/couchcryptid/templog-ingest-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalized(t *testing.T, columns []string, rows [][]domain.Cell) *domain.Table {
	t.Helper()
	return (&domain.Table{Columns: columns, Rows: rows}).Normalize()
}

func TestDetectTimeColumn_NamedColumn(t *testing.T) {
	tbl := normalized(t,
		[]string{"DataHora", "Temperatura (°C)"},
		[][]domain.Cell{
			{"01/02/2024 10:00", "23,5"},
			{"01/02/2024 11:00", "24,1"},
		},
	)

	det := domain.DetectTimeColumn(tbl)
	assert.Equal(t, "datahora", det.Column)
	assert.Empty(t, det.PairColumn)
	assert.InEpsilon(t, 1.0, det.Score, 0.0001)
	require.Len(t, det.Timestamps, 2)
	assert.Equal(t, time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC), det.Timestamps[0])
}

func TestDetectTimeColumn_NoNameMatchFallsBackToAllColumns(t *testing.T) {
	tbl := normalized(t,
		[]string{"Registro", "Valor"},
		[][]domain.Cell{
			{"01/02/2024 10:00", "23,5"},
			{"01/02/2024 11:00", "24,1"},
		},
	)

	det := domain.DetectTimeColumn(tbl)
	assert.Equal(t, "registro", det.Column)
	assert.InEpsilon(t, 1.0, det.Score, 0.0001)
}

func TestDetectTimeColumn_CleanDateColumnSkipsPairing(t *testing.T) {
	// A fully parseable date column clears the pairing threshold on its own,
	// so the separate hour column is left alone and rows land at midnight.
	tbl := normalized(t,
		[]string{"Data", "Hora", "Temp"},
		[][]domain.Cell{
			{"01/02/2024", "10:00", "23,5"},
			{"01/02/2024", "11:30", "24,1"},
		},
	)

	det := domain.DetectTimeColumn(tbl)
	assert.Equal(t, "data", det.Column)
	assert.Empty(t, det.PairColumn)
	require.Len(t, det.Timestamps, 2)
	assert.Equal(t, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC), det.Timestamps[1])
}

func TestDetectTimeColumn_PairWinsWhenSinglesScoreLow(t *testing.T) {
	// Half the date cells are corrupted, pushing every single-column score
	// below the pairing threshold. The date+hour pair matches the best single
	// score, and at a tie the pair is preferred.
	tbl := normalized(t,
		[]string{"Data", "Hora", "Temp"},
		[][]domain.Cell{
			{"01/02/2024", "10:00", "23,5"},
			{"corrupted", "11:00", "24,1"},
		},
	)

	det := domain.DetectTimeColumn(tbl)
	assert.Equal(t, "data", det.Column)
	assert.Equal(t, "hora", det.PairColumn)
	require.Len(t, det.Timestamps, 2)
	assert.Equal(t, time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC), det.Timestamps[0])
	assert.True(t, det.Timestamps[1].IsZero())
}

func TestDetectTimeColumn_UnparseableRowsLeftZero(t *testing.T) {
	tbl := normalized(t,
		[]string{"Timestamp", "Temp"},
		[][]domain.Cell{
			{"01/02/2024 10:00", "23,5"},
			{"corrupted", "24,1"},
			{"01/02/2024 12:00", "25,0"},
		},
	)

	det := domain.DetectTimeColumn(tbl)
	assert.Equal(t, "timestamp", det.Column)
	assert.InEpsilon(t, 2.0/3.0, det.Score, 0.0001)
	require.Len(t, det.Timestamps, 3)
	assert.True(t, det.Timestamps[1].IsZero())
}

func TestDetectTimeColumn_TieKeepsFirstColumn(t *testing.T) {
	tbl := normalized(t,
		[]string{"data_time", "datahora", "temp"},
		[][]domain.Cell{
			{"01/02/2024 10:00", "01/02/2024 10:00", "23,5"},
		},
	)

	det := domain.DetectTimeColumn(tbl)
	assert.Equal(t, "data_time", det.Column)
}
