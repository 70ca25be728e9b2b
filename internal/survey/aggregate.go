package survey

import (
	"fmt"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
)

// AggregateResponses computes one favorable share per distinct group
// value in the input. Records missing the grouping column or the
// target column are excluded here, exactly once; excluding them again
// upstream is harmless but the denominator is this function's
// responsibility. Groups left with zero records are omitted, so no
// share is ever a division by zero.
//
// The input is never mutated, and the output is a pure function of it:
// re-running on the same records yields identical results.
func AggregateResponses(records []model.Record, groupBy string, q model.Question) (*model.QuestionResult, error) {
	if groupBy == "" {
		return nil, fmt.Errorf("grouping column is required")
	}
	if q.Column == "" {
		return nil, fmt.Errorf("question %q has no target column", q.Name)
	}
	if err := ValidateRule(q.Rule); err != nil {
		return nil, fmt.Errorf("question %q: %w", q.Name, err)
	}

	tallies := make(map[string]model.GroupTally)
	excluded := 0

	for _, rec := range records {
		if isMissing(rec, groupBy) || isMissing(rec, q.Column) {
			excluded++
			continue
		}

		key := fmt.Sprintf("%v", rec[groupBy])
		favorable, err := Classify(q.Rule, rec[q.Column])
		if err != nil {
			return nil, fmt.Errorf("question %q, column %q, group %q: %w", q.Name, q.Column, key, err)
		}

		t := tallies[key]
		t.Total++
		if favorable {
			t.Favorable++
		}
		tallies[key] = t
	}

	summary := make(model.GroupSummary, len(tallies))
	for key, t := range tallies {
		summary[key] = float64(t.Favorable) / float64(t.Total)
	}

	return &model.QuestionResult{
		Question: q.Name,
		Summary:  summary,
		Tallies:  tallies,
		Excluded: excluded,
	}, nil
}
