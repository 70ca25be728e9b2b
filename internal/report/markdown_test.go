package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
)

func TestBuildMarkdown_RanksGroups(t *testing.T) {
	results := []*model.QuestionResult{
		{
			Question: "gov_sat",
			Summary:  model.GroupSummary{"Egypt": 0.5, "Libya": 0.75},
			Tallies: map[string]model.GroupTally{
				"Egypt": {Favorable: 1, Total: 2},
				"Libya": {Favorable: 3, Total: 4},
			},
			Excluded: 1,
		},
	}

	md := buildMarkdown("Arab Spring Survey", results, nil, nil)

	assert.Contains(t, md, "# Arab Spring Survey")
	assert.Contains(t, md, "## gov_sat")
	assert.Contains(t, md, "1. **Libya** — 75.0% favorable (3 of 4 responses)")
	assert.Contains(t, md, "2. **Egypt** — 50.0% favorable (1 of 2 responses)")
	assert.Contains(t, md, "excluded for missing group or response: 1")

	require.Less(t, strings.Index(md, "Libya"), strings.Index(md, "Egypt"),
		"groups must be ranked by share, descending")
}

func TestBuildMarkdown_MissingJoinCell(t *testing.T) {
	table := &model.SummaryTable{
		Columns: []string{"demo", "auth"},
		Rows: map[string]map[string]float64{
			"Egypt": {"demo": 0.6},
			"Libya": {"auth": 0.3},
		},
	}

	md := buildMarkdown("", nil, table, nil)

	assert.Contains(t, md, "| Egypt | 60.0% | — |")
	assert.Contains(t, md, "| Libya | — | 30.0% |")
}

func TestBuildMarkdown_TrendDirection(t *testing.T) {
	up := buildMarkdown("", nil, nil, &model.TrendLine{Intercept: 0.2, Slope: 0.5, N: 10})
	assert.Contains(t, up, "rises")

	down := buildMarkdown("", nil, nil, &model.TrendLine{Intercept: 0.8, Slope: -0.3, N: 10})
	assert.Contains(t, down, "falls")
}
