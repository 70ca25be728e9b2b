package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
)

// writeSummaryCSV exports the joined table. Missing cells are written
// empty so a downstream reader sees them as NA rather than zero.
func writeSummaryCSV(table *model.SummaryTable, path string) (int, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := append([]string{"group"}, table.Columns...)
	if err := writer.Write(header); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	rowCount := 0
	for _, key := range table.SortedKeys() {
		row := []string{key}
		for _, col := range table.Columns {
			if share, ok := table.Value(key, col); ok {
				row = append(row, strconv.FormatFloat(share, 'f', -1, 64))
			} else {
				row = append(row, "")
			}
		}
		if err := writer.Write(row); err != nil {
			return rowCount, fmt.Errorf("failed to write row: %w", err)
		}
		rowCount++
	}

	return rowCount, nil
}
