// Package report runs a complete survey analysis: load, reshape,
// aggregate each question, join, fit the optional trend, and write the
// artifacts the report spec asks for.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
	"github.com/natlarsen/arab-spring-analysis/internal/store"
	"github.com/natlarsen/arab-spring-analysis/internal/survey"
	"github.com/natlarsen/arab-spring-analysis/pkg/utils"
)

// ------------------- Report Runner -------------------

// Run executes the whole report as one synchronous batch. The dataset
// is loaded once and never mutated; each stage derives new values from
// the previous one. Any failure surfaces immediately; there are no
// retries in a one-shot computation.
func Run(ctx context.Context, runID string, spec model.ReportSpec) (err error) {
	start := time.Now()
	fmt.Printf("🚀 Starting survey report run: %s\n", runID)

	store.UpdateRunStatus(runID, "running")

	// Defer function to handle status updates on completion/error
	defer func() {
		if err != nil {
			store.UpdateRunStatus(runID, "failed")
			store.SaveRunError(runID, err)
		}
	}()

	if err := validateSpec(spec); err != nil {
		return err
	}

	// --- LOAD STAGE ---
	store.UpdateRunStatus(runID, "loading")
	records, err := survey.LoadDataset(spec.Source)
	if err != nil {
		return err
	}
	fmt.Printf("📄 Loaded %d records from %s\n", len(records), spec.Source.Path)

	if len(spec.Source.RequireColumns) > 0 {
		before := len(records)
		records = survey.FilterRequired(records, spec.Source.RequireColumns)
		fmt.Printf("🔍 Required-column filter: %d of %d records kept\n", len(records), before)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// --- AGGREGATION STAGE ---
	store.UpdateRunStatus(runID, "aggregating")
	results := make([]*model.QuestionResult, 0, len(spec.Questions))
	names := make([]string, 0, len(spec.Questions))
	summaries := make([]model.GroupSummary, 0, len(spec.Questions))

	for _, q := range spec.Questions {
		result, err := survey.AggregateResponses(records, spec.GroupBy, q)
		if err != nil {
			return err
		}
		fmt.Printf("📊 %s: %d groups, %d records excluded\n", q.Name, len(result.Summary), result.Excluded)

		if err := store.SaveQuestionResult(runID, result); err != nil {
			return fmt.Errorf("failed to store summary for %s: %w", q.Name, err)
		}

		results = append(results, result)
		names = append(names, q.Name)
		summaries = append(summaries, result.Summary)
	}

	table, err := survey.OuterJoin(names, summaries)
	if err != nil {
		return err
	}

	var trend *model.TrendLine
	var trendPoints []survey.Point
	if spec.Trend != nil {
		trendPoints = survey.AlignedPoints(table, spec.Trend.X, spec.Trend.Y)
		line, err := survey.FitTrend(trendPoints)
		if err != nil {
			return fmt.Errorf("trend %s vs %s: %w", spec.Trend.Y, spec.Trend.X, err)
		}
		trend = &line
		fmt.Printf("📈 Trend %s vs %s: intercept %.3f, slope %.3f (%d points)\n",
			spec.Trend.Y, spec.Trend.X, line.Intercept, line.Slope, line.N)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	// --- RENDER STAGE ---
	store.UpdateRunStatus(runID, "rendering")
	om := utils.NewOutputManager(spec.Export.Dir)
	if err := renderArtifacts(om, runID, spec, results, table, trend, trendPoints); err != nil {
		return err
	}

	store.UpdateRunStatus(runID, "completed")
	fmt.Printf("🏁 Report run %s completed in %v\n", runID, time.Since(start))
	return nil
}

func validateSpec(spec model.ReportSpec) error {
	if spec.Source.Path == "" {
		return fmt.Errorf("report spec has no source path")
	}
	if spec.GroupBy == "" {
		return fmt.Errorf("report spec has no grouping column")
	}
	if len(spec.Questions) == 0 {
		return fmt.Errorf("report spec has no questions")
	}
	seen := make(map[string]bool, len(spec.Questions))
	for _, q := range spec.Questions {
		if q.Name == "" {
			return fmt.Errorf("question for column %q has no name", q.Column)
		}
		if seen[q.Name] {
			return fmt.Errorf("duplicate question name %q", q.Name)
		}
		seen[q.Name] = true
	}
	if spec.Trend != nil {
		if !seen[spec.Trend.X] || !seen[spec.Trend.Y] {
			return fmt.Errorf("trend references unknown question (%q, %q)", spec.Trend.X, spec.Trend.Y)
		}
	}
	return nil
}

func renderArtifacts(om *utils.OutputManager, runID string, spec model.ReportSpec,
	results []*model.QuestionResult, table *model.SummaryTable,
	trend *model.TrendLine, trendPoints []survey.Point) error {

	if err := om.EnsureOutputDirExists(); err != nil {
		return err
	}

	if spec.Export.Charts {
		for i, result := range results {
			q := spec.Questions[i]
			title := q.ChartTitle
			if title == "" {
				title = q.Name
			}
			yLabel := q.AxisLabel
			if yLabel == "" {
				yLabel = "% favorable"
			}
			path, err := om.GetOutputFilePath(runID, artifactName(q.Name)+"_share.png")
			if err != nil {
				return err
			}
			if err := saveBarChart(result.Summary, title, yLabel, path); err != nil {
				return err
			}
			logArtifact(om, path)
		}

		if trend != nil {
			title := spec.Trend.Title
			if title == "" {
				title = fmt.Sprintf("%s vs %s", spec.Trend.Y, spec.Trend.X)
			}
			path, err := om.GetOutputFilePath(runID, "trend_scatter.png")
			if err != nil {
				return err
			}
			if err := saveScatterChart(trendPoints, *trend, title, spec.Trend.X, spec.Trend.Y, path); err != nil {
				return err
			}
			logArtifact(om, path)
		}
	}

	if spec.Export.Excel {
		path, err := om.GetOutputFilePath(runID, "summary.xlsx")
		if err != nil {
			return err
		}
		if err := saveWorkbook(results, table, trend, path); err != nil {
			return err
		}
		logArtifact(om, path)
	}

	if spec.Export.Markdown {
		path, err := om.GetOutputFilePath(runID, "report.md")
		if err != nil {
			return err
		}
		if err := saveMarkdown(buildMarkdown(spec.Title, results, table, trend), path); err != nil {
			return err
		}
		logArtifact(om, path)
	}

	if spec.Export.CSV {
		path, err := om.GetOutputFilePath(runID, "summary.csv")
		if err != nil {
			return err
		}
		rows, err := writeSummaryCSV(table, path)
		if err != nil {
			return err
		}
		fmt.Printf("💾 Artifact written (csv): %d rows to %s\n", rows, path)
	}

	return nil
}

func logArtifact(om *utils.OutputManager, path string) {
	fmt.Printf("💾 Artifact written (%s): %s\n", om.GetFileType(path), path)
}

// artifactName makes a question name safe for a filename.
func artifactName(question string) string {
	name := strings.ToLower(question)
	name = strings.ReplaceAll(name, " ", "_")
	return strings.ReplaceAll(name, "/", "_")
}
