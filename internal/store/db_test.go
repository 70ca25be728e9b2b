package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
)

func initTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, InitDB(":memory:"))
}

func testSpec() model.ReportSpec {
	return model.ReportSpec{
		Source:  model.Source{Path: "responses.csv"},
		GroupBy: "country",
		Questions: []model.Question{
			{Name: "gov_sat", Column: "gov_sat", Rule: model.Rule{Accept: []string{"Good"}}},
		},
	}
}

func TestRunLifecycle(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveRun("run-1", testSpec()))

	run, err := GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, "pending", run["status"])

	require.NoError(t, UpdateRunStatus("run-1", "completed"))
	run, err = GetRun("run-1")
	require.NoError(t, err)
	assert.Equal(t, "completed", run["status"])

	spec, ok := run["spec"].(model.ReportSpec)
	require.True(t, ok)
	assert.Equal(t, "country", spec.GroupBy)
}

func TestListRuns(t *testing.T) {
	initTestDB(t)

	require.NoError(t, SaveRun("run-1", testSpec()))
	require.NoError(t, SaveRun("run-2", testSpec()))

	runs, err := ListRuns()
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestSaveQuestionResult(t *testing.T) {
	initTestDB(t)
	require.NoError(t, SaveRun("run-1", testSpec()))

	result := &model.QuestionResult{
		Question: "gov_sat",
		Summary:  model.GroupSummary{"Egypt": 0.5, "Libya": 0.0},
		Tallies: map[string]model.GroupTally{
			"Egypt": {Favorable: 1, Total: 2},
			"Libya": {Favorable: 0, Total: 1},
		},
	}
	require.NoError(t, SaveQuestionResult("run-1", result))

	var count int
	require.NoError(t, db.QueryRow(
		`SELECT COUNT(*) FROM group_summaries WHERE run_id = ?`, "run-1").Scan(&count))
	assert.Equal(t, 2, count)

	var share float64
	require.NoError(t, db.QueryRow(
		`SELECT share FROM group_summaries WHERE run_id = ? AND group_key = ?`,
		"run-1", "Egypt").Scan(&share))
	assert.Equal(t, 0.5, share)
}

func TestSaveRunError(t *testing.T) {
	initTestDB(t)
	require.NoError(t, SaveRun("run-1", testSpec()))

	assert.NoError(t, SaveRunError("run-1", nil), "nil error is a no-op")
	require.NoError(t, SaveRunError("run-1", assert.AnError))

	var msg string
	require.NoError(t, db.QueryRow(
		`SELECT error_message FROM run_errors WHERE run_id = ?`, "run-1").Scan(&msg))
	assert.Equal(t, assert.AnError.Error(), msg)
}
