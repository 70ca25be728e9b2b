package survey

import (
	"fmt"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
)

// OuterJoin combines named summaries into one table by full outer join
// on group key. A group present in one summary but absent from another
// still gets a row; the absent column simply has no cell, and is never
// coerced to zero.
func OuterJoin(names []string, summaries []model.GroupSummary) (*model.SummaryTable, error) {
	if len(names) != len(summaries) {
		return nil, fmt.Errorf("outer join: %d names for %d summaries", len(names), len(summaries))
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("outer join: duplicate column %q", name)
		}
		seen[name] = true
	}

	table := &model.SummaryTable{
		Columns: append([]string(nil), names...),
		Rows:    make(map[string]map[string]float64),
	}

	for i, summary := range summaries {
		for key, share := range summary {
			row, ok := table.Rows[key]
			if !ok {
				row = make(map[string]float64, len(names))
				table.Rows[key] = row
			}
			row[names[i]] = share
		}
	}

	return table, nil
}
