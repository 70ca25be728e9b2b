// Package survey turns raw survey CSV columns into per-group
// favorable-response summaries. Loading and reshaping are delegated to
// gota; classification and aggregation are pure functions over Records.
package survey

import (
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"github.com/natlarsen/arab-spring-analysis/internal/model"
	"github.com/natlarsen/arab-spring-analysis/pkg/utils"
)

// defaultNAValues are always treated as missing, on top of whatever the
// source config adds. "NaN" covers gota's own NA rendering.
var defaultNAValues = []string{"", "NA", "NaN", "n/a"}

// LoadDataset reads the survey CSV, applies the column subset and
// renames, and materializes the rows as Records. Cells that are empty
// or match an NA marker are left out of their Record entirely.
func LoadDataset(src model.Source) ([]model.Record, error) {
	f, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open survey file: %w", err)
	}
	defer f.Close()

	delim := ','
	if src.Delimiter != "" {
		delim = rune(src.Delimiter[0])
	}

	df := dataframe.ReadCSV(f,
		dataframe.WithDelimiter(delim),
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return nil, fmt.Errorf("failed to read survey CSV: %w", df.Err)
	}

	if len(src.Columns) > 0 {
		df = df.Select(src.Columns)
		if df.Err != nil {
			return nil, fmt.Errorf("column selection failed: %w", df.Err)
		}
	}
	for _, rn := range src.Renames {
		df = df.Rename(rn.To, rn.From)
		if df.Err != nil {
			return nil, fmt.Errorf("rename %s→%s failed: %w", rn.From, rn.To, df.Err)
		}
	}

	missing := missingSet(src.NAValues)

	rows := df.Records() // first row is the header
	if len(rows) == 0 {
		return nil, fmt.Errorf("survey CSV has no header row")
	}
	headers := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		headers[i] = utils.CleanHeader(h)
	}

	records := make([]model.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(model.Record, len(headers))
		for i, cell := range row {
			if i >= len(headers) {
				break
			}
			if missing[cell] {
				continue
			}
			rec[headers[i]] = utils.ParseValue(cell)
		}
		records = append(records, rec)
	}

	return records, nil
}

// FilterRequired drops every record missing any of the listed columns.
// With an empty column list the input is returned unchanged.
func FilterRequired(records []model.Record, columns []string) []model.Record {
	if len(columns) == 0 {
		return records
	}
	kept := make([]model.Record, 0, len(records))
	for _, rec := range records {
		ok := true
		for _, col := range columns {
			if isMissing(rec, col) {
				ok = false
				break
			}
		}
		if ok {
			kept = append(kept, rec)
		}
	}
	return kept
}

func missingSet(extra []string) map[string]bool {
	m := make(map[string]bool, len(defaultNAValues)+len(extra))
	for _, v := range defaultNAValues {
		m[v] = true
	}
	for _, v := range extra {
		m[v] = true
	}
	return m
}

func isMissing(rec model.Record, column string) bool {
	v, ok := rec[column]
	return !ok || v == nil
}
