package report

import (
	"strconv"
	"strings"

	"testview/internal/domain"
)

// Color is the text colour a result cell is rendered with
type Color string

const (
	ColorGreen   Color = "green"
	ColorRed     Color = "red"
	ColorGray    Color = "gray"
	ColorDefault Color = ""
)

const (
	iconPassed  = "✅"
	iconProblem = "❌"
	iconSkipped = "⏭️"
)

// Row is one display-ready test case
type Row struct {
	ContainingUnit string         `json:"containing_unit"`
	Name           string         `json:"name"`
	Result         string         `json:"result"`
	Color          Color          `json:"color"`
	Duration       string         `json:"duration"`
	Detail         string         `json:"detail"`
	Outcome        domain.Outcome `json:"outcome"`
}

// Cells returns the row in column order
func (r Row) Cells() [5]string {
	return [5]string{r.ContainingUnit, r.Name, r.Result, r.Duration, r.Detail}
}

// Table is the render-ready form of a result sequence
type Table struct {
	Columns [5]string `json:"columns"`
	Rows    []Row     `json:"rows"`
}

// Empty reports whether there is nothing to show. Consumers render an
// explicit "no results" state instead of an empty table.
func (t Table) Empty() bool {
	return len(t.Rows) == 0
}

// FormatForDisplay maps records to a table, one row per record in the same
// order. The records are not modified.
func FormatForDisplay(records []domain.TestCaseResult, locale Locale) Table {
	msg := MessagesFor(locale)
	table := Table{
		Columns: msg.Columns,
		Rows:    make([]Row, 0, len(records)),
	}
	for _, r := range records {
		label, color := Classify(r.Outcome, msg)
		table.Rows = append(table.Rows, Row{
			ContainingUnit: r.ContainingUnit,
			Name:           r.Name,
			Result:         label,
			Color:          color,
			Duration:       FormatSeconds(r.DurationSeconds),
			Detail:         r.Detail,
			Outcome:        r.Outcome,
		})
	}
	return table
}

// Classify maps an outcome to its label and colour. Unknown outcomes pass
// through unchanged with the default colour.
func Classify(outcome domain.Outcome, msg Messages) (string, Color) {
	switch outcome {
	case domain.OutcomePassed:
		return iconPassed + " " + msg.Passed, ColorGreen
	case domain.OutcomeFailed, domain.OutcomeError:
		return iconProblem + " " + string(outcome), ColorRed
	case domain.OutcomeSkipped:
		return iconSkipped + " " + msg.Skipped, ColorGray
	default:
		return string(outcome), ColorDefault
	}
}

// FormatSeconds renders a duration with at least one fractional digit,
// so 0 becomes "0.0" and 0.12 stays "0.12".
func FormatSeconds(seconds float64) string {
	s := strconv.FormatFloat(seconds, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Summary counts records per outcome
type Summary struct {
	Total           int     `json:"total"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Errors          int     `json:"errors"`
	Skipped         int     `json:"skipped"`
	Other           int     `json:"other"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Summarize counts the records and sums their durations
func Summarize(records []domain.TestCaseResult) Summary {
	s := Summary{Total: len(records)}
	for _, r := range records {
		switch r.Outcome {
		case domain.OutcomePassed:
			s.Passed++
		case domain.OutcomeFailed:
			s.Failed++
		case domain.OutcomeError:
			s.Errors++
		case domain.OutcomeSkipped:
			s.Skipped++
		default:
			s.Other++
		}
		s.DurationSeconds += r.DurationSeconds
	}
	return s
}
