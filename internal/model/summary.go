package model

import "sort"

// GroupSummary maps a group key (e.g. a country name) to the share of
// that group's filtered records classified as favorable. Shares are in
// [0,1]. Groups with zero filtered records are never present.
type GroupSummary map[string]float64

// SortedKeys returns the group keys in alphabetical order. Map order
// carries no meaning; callers sort for display only.
func (s GroupSummary) SortedKeys() []string {
	keys := make([]string, 0, len(s))
	for k := range s {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GroupTally holds the exact counts behind one group's share.
type GroupTally struct {
	Favorable int `json:"favorable"`
	Total     int `json:"total"`
}

// QuestionResult is the output of aggregating one question.
type QuestionResult struct {
	Question string                `json:"question"`
	Summary  GroupSummary          `json:"summary"`
	Tallies  map[string]GroupTally `json:"tallies"`
	Excluded int                   `json:"excluded"` // records dropped for missing group or target
}

// SummaryTable is a full outer join of named summaries on group key.
// A group key absent from one summary has no entry in that column of
// its row; missing stays missing, never zero.
type SummaryTable struct {
	Columns []string                      `json:"columns"`
	Rows    map[string]map[string]float64 `json:"rows"` // group key → column → share
}

// Value returns the cell for (group, column) and whether it is present.
func (t *SummaryTable) Value(group, column string) (float64, bool) {
	row, ok := t.Rows[group]
	if !ok {
		return 0, false
	}
	v, ok := row[column]
	return v, ok
}

// SortedKeys returns the table's group keys in alphabetical order.
func (t *SummaryTable) SortedKeys() []string {
	keys := make([]string, 0, len(t.Rows))
	for k := range t.Rows {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TrendLine is an ordinary least-squares fit over paired group shares.
type TrendLine struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	N         int     `json:"n"` // aligned points used for the fit
}
