package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
)

// saveWorkbook writes one sheet per question summary plus a sheet for
// the joined table. Missing join cells stay blank, never zero.
func saveWorkbook(results []*model.QuestionResult, table *model.SummaryTable, trend *model.TrendLine, path string) error {
	f := excelize.NewFile()

	f.SetSheetName("Sheet1", "Joined_Summary")

	headers := append([]string{"Group"}, table.Columns...)
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue("Joined_Summary", cell, header)
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth("Joined_Summary", col, col, 18)
	}

	for i, key := range table.SortedKeys() {
		row := i + 2
		f.SetCellValue("Joined_Summary", fmt.Sprintf("A%d", row), key)
		for j, col := range table.Columns {
			if share, ok := table.Value(key, col); ok {
				cell, _ := excelize.CoordinatesToCellName(j+2, row)
				f.SetCellValue("Joined_Summary", cell, share)
			}
		}
	}

	for _, result := range results {
		sheet := sheetName(result.Question)
		if _, err := f.NewSheet(sheet); err != nil {
			return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
		}

		questionHeaders := []string{"Group", "Favorable", "Total", "Share"}
		for i, header := range questionHeaders {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			f.SetCellValue(sheet, cell, header)
			col, _ := excelize.ColumnNumberToName(i + 1)
			f.SetColWidth(sheet, col, col, 18)
		}

		for i, key := range result.Summary.SortedKeys() {
			row := i + 2
			t := result.Tallies[key]
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), key)
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), t.Favorable)
			f.SetCellValue(sheet, fmt.Sprintf("C%d", row), t.Total)
			f.SetCellValue(sheet, fmt.Sprintf("D%d", row), result.Summary[key])
		}

		excludedRow := len(result.Summary) + 3
		f.SetCellValue(sheet, fmt.Sprintf("A%d", excludedRow), "Excluded (missing group or response)")
		f.SetCellValue(sheet, fmt.Sprintf("B%d", excludedRow), result.Excluded)
	}

	if trend != nil {
		if _, err := f.NewSheet("Trend"); err != nil {
			return fmt.Errorf("failed to create sheet Trend: %w", err)
		}
		f.SetCellValue("Trend", "A1", "Intercept")
		f.SetCellValue("Trend", "B1", trend.Intercept)
		f.SetCellValue("Trend", "A2", "Slope")
		f.SetCellValue("Trend", "B2", trend.Slope)
		f.SetCellValue("Trend", "A3", "Aligned points")
		f.SetCellValue("Trend", "B3", trend.N)
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	return nil
}

// sheetName keeps question names inside excelize's 31-char sheet limit.
func sheetName(question string) string {
	if len(question) > 31 {
		return question[:31]
	}
	return question
}
