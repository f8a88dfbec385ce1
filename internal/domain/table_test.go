package domain_test

import (
	"testing"

	"github.com/couchcryptid/templog-ingest-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_Normalize(t *testing.T) {
	raw := &domain.Table{
		Columns: []string{"  DataHora ", "Temperatura (°C)", "Vazio", "Umidade"},
		Rows: [][]domain.Cell{
			{"01/02/2024 10:00", "23,5", nil, "60"},
			{"01/02/2024 11:00", "24,1", "", "61"},
			{"", "", nil, ""},
		},
	}

	got := raw.Normalize()
	assert.Equal(t, []string{"datahora", "temperatura(c)", "umidade"}, got.Columns)
	require.Len(t, got.Rows, 2)
	assert.Equal(t, "23,5", got.Rows[0][1])
}

func TestTable_Normalize_DuplicateNamesKeepFirst(t *testing.T) {
	raw := &domain.Table{
		Columns: []string{"Temp", "TEMP "},
		Rows: [][]domain.Cell{
			{"1", "a"},
			{"2", "b"},
		},
	}

	got := raw.Normalize()
	require.Equal(t, []string{"temp"}, got.Columns)
	assert.Equal(t, []domain.Cell{"1", "2"}, got.Column("temp"))
}

func TestTable_Normalize_RaggedRows(t *testing.T) {
	raw := &domain.Table{
		Columns: []string{"data", "temp"},
		Rows: [][]domain.Cell{
			{"01/02/2024"},
			{"02/02/2024", "22"},
		},
	}

	got := raw.Normalize()
	require.Len(t, got.Rows, 2)
	assert.Nil(t, got.Rows[0][1])
}

func TestTable_Column_Unknown(t *testing.T) {
	tbl := &domain.Table{Columns: []string{"a"}}
	assert.Nil(t, tbl.Column("missing"))
}
