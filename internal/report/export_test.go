package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
)

func TestWriteSummaryCSV(t *testing.T) {
	table := &model.SummaryTable{
		Columns: []string{"demo", "auth"},
		Rows: map[string]map[string]float64{
			"Egypt": {"demo": 0.6},
			"Libya": {"demo": 0.4, "auth": 0.3},
		},
	}

	path := filepath.Join(t.TempDir(), "summary.csv")
	rows, err := writeSummaryCSV(table, path)
	require.NoError(t, err)
	assert.Equal(t, 2, rows)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"group", "demo", "auth"}, got[0])
	assert.Equal(t, []string{"Egypt", "0.6", ""}, got[1], "missing cell stays empty, not zero")
	assert.Equal(t, []string{"Libya", "0.4", "0.3"}, got[2])
}

func TestArtifactName(t *testing.T) {
	assert.Equal(t, "gov_sat", artifactName("gov_sat"))
	assert.Equal(t, "favor_democracy", artifactName("Favor Democracy"))
	assert.Equal(t, "a_b", artifactName("a/b"))
}
