package report

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
)

// buildMarkdown assembles the narrative report: ranked shares per
// question, the joined table, and the trend commentary.
func buildMarkdown(title string, results []*model.QuestionResult, table *model.SummaryTable, trend *model.TrendLine) string {
	var b strings.Builder

	if title == "" {
		title = "Survey Response Summary"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	for _, result := range results {
		fmt.Fprintf(&b, "## %s\n\n", result.Question)

		type ranked struct {
			key   string
			share float64
		}
		rows := make([]ranked, 0, len(result.Summary))
		for key, share := range result.Summary {
			rows = append(rows, ranked{key, share})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].share != rows[j].share {
				return rows[i].share > rows[j].share
			}
			return rows[i].key < rows[j].key
		})

		for rank, row := range rows {
			t := result.Tallies[row.key]
			fmt.Fprintf(&b, "%d. **%s** — %.1f%% favorable (%d of %d responses)\n",
				rank+1, row.key, row.share*100, t.Favorable, t.Total)
		}
		fmt.Fprintf(&b, "\nRecords excluded for missing group or response: %d\n\n", result.Excluded)
	}

	if table != nil && len(table.Columns) > 1 {
		fmt.Fprintf(&b, "## Joined summary\n\n")
		fmt.Fprintf(&b, "| Group | %s |\n", strings.Join(table.Columns, " | "))
		fmt.Fprintf(&b, "|---|%s\n", strings.Repeat("---|", len(table.Columns)))
		for _, key := range table.SortedKeys() {
			cells := make([]string, len(table.Columns))
			for i, col := range table.Columns {
				if share, ok := table.Value(key, col); ok {
					cells[i] = fmt.Sprintf("%.1f%%", share*100)
				} else {
					cells[i] = "—"
				}
			}
			fmt.Fprintf(&b, "| %s | %s |\n", key, strings.Join(cells, " | "))
		}
		b.WriteString("\n")
	}

	if trend != nil {
		fmt.Fprintf(&b, "## Trend\n\n")
		direction := "rises"
		if trend.Slope < 0 {
			direction = "falls"
		}
		fmt.Fprintf(&b, "Across the %d groups with both measures, the fitted line is y = %.3f + %.3f·x: the y share %s by %.1f percentage points for every 10-point rise in x.\n",
			trend.N, trend.Intercept, trend.Slope, direction, math.Abs(trend.Slope)*10)
	}

	return b.String()
}

func saveMarkdown(content, path string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
