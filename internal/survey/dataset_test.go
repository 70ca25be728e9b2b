package survey

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "responses.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDataset_SelectRenameAndMissing(t *testing.T) {
	path := writeTempCSV(t,
		"country,q201,q409,q511\n"+
			"Egypt,8,Good,1\n"+
			"Egypt,NA,Bad,2\n"+
			"Libya,3,,3\n")

	records, err := LoadDataset(model.Source{
		Path:    path,
		Columns: []string{"country", "q201", "q409"},
		Renames: []model.Rename{
			{From: "q201", To: "gov_sat"},
			{From: "q409", To: "pref"},
		},
	})
	require.NoError(t, err)
	require.Len(t, records, 3)

	// select dropped q511 entirely
	for _, rec := range records {
		assert.NotContains(t, rec, "q511")
		assert.NotContains(t, rec, "q201")
	}

	assert.Equal(t, model.Record{"country": "Egypt", "gov_sat": 8, "pref": "Good"}, records[0])

	_, ok := records[1]["gov_sat"]
	assert.False(t, ok, "NA cell must be absent from the record")
	assert.Equal(t, "Bad", records[1]["pref"])

	_, ok = records[2]["pref"]
	assert.False(t, ok, "empty cell must be absent from the record")
}

func TestLoadDataset_CustomNAValues(t *testing.T) {
	path := writeTempCSV(t,
		"country,gov_sat\n"+
			"Egypt,99\n"+
			"Libya,7\n")

	records, err := LoadDataset(model.Source{
		Path:     path,
		NAValues: []string{"99"}, // survey code for "refused"
	})
	require.NoError(t, err)
	require.Len(t, records, 2)

	_, ok := records[0]["gov_sat"]
	assert.False(t, ok)
	assert.Equal(t, 7, records[1]["gov_sat"])
}

func TestLoadDataset_MissingFile(t *testing.T) {
	_, err := LoadDataset(model.Source{Path: filepath.Join(t.TempDir(), "nope.csv")})
	assert.Error(t, err)
}

func TestLoadDataset_UnknownColumn(t *testing.T) {
	path := writeTempCSV(t, "country,gov_sat\nEgypt,8\n")

	_, err := LoadDataset(model.Source{Path: path, Columns: []string{"country", "q999"}})
	assert.Error(t, err)
}

func TestFilterRequired(t *testing.T) {
	records := []model.Record{
		{"country": "Egypt", "gov_sat": 8, "pref": "Good"},
		{"country": "Egypt", "gov_sat": 2},
		{"country": "Libya", "pref": "Bad"},
	}

	kept := FilterRequired(records, []string{"gov_sat", "pref"})
	require.Len(t, kept, 1)
	assert.Equal(t, records[0], kept[0])

	assert.Len(t, FilterRequired(records, nil), 3)
}
