package model

// Record is a schema-agnostic survey row: column name → value.
// A column whose raw cell was empty or matched an NA marker is simply
// absent from the map; downstream code treats absence as missing.
type Record map[string]interface{}

// Rename maps a raw survey column code to the name used in the report.
type Rename struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Source describes the survey CSV and how to reshape it after loading.
type Source struct {
	Path      string   `json:"path"`
	Delimiter string   `json:"delimiter,omitempty"` // default ","
	NAValues  []string `json:"naValues,omitempty"`  // extra missing markers besides ""
	Columns   []string `json:"columns,omitempty"`   // subset of raw columns to keep
	Renames   []Rename `json:"renames,omitempty"`

	// RequireColumns drops, up front, every record missing any of the
	// listed columns. This reproduces a combined multi-question filter;
	// leave empty to filter per aggregation call only.
	RequireColumns []string `json:"requireColumns,omitempty"`
}

// Rule classifies a raw response as favorable or not. Exactly one of
// the two forms must be set: a numeric range (Min and Max, inclusive)
// or a set of accepted labels.
type Rule struct {
	Min    *float64 `json:"min,omitempty"`
	Max    *float64 `json:"max,omitempty"`
	Accept []string `json:"accept,omitempty"`
}

// IsRange reports whether the rule is a numeric range rule.
func (r Rule) IsRange() bool { return r.Min != nil && r.Max != nil }

// IsSet reports whether the rule is a label-set rule.
func (r Rule) IsSet() bool { return len(r.Accept) > 0 }

// Question is one analysis: a target column and its classification rule.
type Question struct {
	Name       string `json:"name"`   // short identifier, used in outputs
	Column     string `json:"column"` // target column after renames
	Rule       Rule   `json:"rule"`
	ChartTitle string `json:"chartTitle,omitempty"`
	AxisLabel  string `json:"axisLabel,omitempty"`
}

// Trend requests a scatter plot of two question summaries with a
// fitted least-squares line, aligned by group key.
type Trend struct {
	X     string `json:"x"` // question name on the x axis
	Y     string `json:"y"` // question name on the y axis
	Title string `json:"title,omitempty"`
}

// Export defines which artifacts a run writes and where.
type Export struct {
	Dir      string `json:"dir"`                // base output directory
	DB       string `json:"db,omitempty"`       // sqlite path, default "report.db"
	Charts   bool   `json:"charts"`             // PNG bar/scatter charts
	Excel    bool   `json:"excel"`              // summary workbook
	Markdown bool   `json:"markdown"`           // narrative report
	CSV      bool   `json:"csv"`                // joined summary table
}

// ReportSpec defines an entire report run.
type ReportSpec struct {
	Title     string     `json:"title,omitempty"`
	Source    Source     `json:"source"`
	GroupBy   string     `json:"groupBy"` // grouping column after renames
	Questions []Question `json:"questions"`
	Trend     *Trend     `json:"trend,omitempty"`
	Export    Export     `json:"export"`
}
