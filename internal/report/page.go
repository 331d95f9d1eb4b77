package report

import (
	"fmt"

	"testview/internal/domain"
)

// State is what a surface should show for a request
type State string

const (
	StateIdle        State = "idle"
	StateResults     State = "results"
	StateNotFound    State = "not_found"
	StateParseError  State = "parse_error"
	StateLaunchError State = "launch_error"
	StateTimeout     State = "timeout"
	StateCancelled   State = "cancelled"
	StateBusy        State = "busy"
)

// Banner is the overall pass/fail signal derived from the tool's exit code
type Banner string

const (
	BannerNone    Banner = ""
	BannerSuccess Banner = "success"
	BannerFailure Banner = "failure"
)

// Page is the render model shared by the terminal, the viewer and the browser UI
type Page struct {
	State      State                   `json:"state"`
	Banner     Banner                  `json:"banner,omitempty"`
	BannerText string                  `json:"banner_text,omitempty"`
	Message    string                  `json:"message,omitempty"`
	Table      Table                   `json:"table"`
	Summary    Summary                 `json:"summary"`
	Output     string                  `json:"output,omitempty"`
	RunID      string                  `json:"run_id,omitempty"`
	ExitCode   int                     `json:"exit_code"`
	Source     string                  `json:"source,omitempty"`
	Locale     Locale                  `json:"locale"`
	Records    []domain.TestCaseResult `json:"-"`
}

// NewPage creates a page with no run attached
func NewPage(locale Locale) *Page {
	msg := MessagesFor(locale)
	return &Page{
		State:   StateIdle,
		Locale:  locale,
		Message: msg.Idle,
		Table:   Table{Columns: msg.Columns, Rows: []Row{}},
	}
}

// NewRunPage creates a page for a finished run, with the banner set from its exit code
func NewRunPage(run *domain.RunResult, locale Locale) *Page {
	p := NewPage(locale)
	msg := p.Messages()
	p.RunID = run.ID
	p.ExitCode = run.ExitCode
	p.Output = run.Output
	p.Source = run.ReportPath
	p.Message = ""
	if run.Passed() {
		p.Banner = BannerSuccess
		p.BannerText = msg.AllPassed
	} else {
		p.Banner = BannerFailure
		p.BannerText = msg.SomeFailed
	}
	return p
}

// NewErrorPage creates a page for a run that produced no exit code at all
func NewErrorPage(state State, err error, locale Locale) *Page {
	p := NewPage(locale)
	msg := p.Messages()
	p.State = state
	switch state {
	case StateLaunchError:
		p.Message = withCause(msg.LaunchError, err)
	case StateTimeout:
		p.Message = withCause(msg.Timeout, err)
	case StateCancelled:
		p.Message = msg.Cancelled
	case StateBusy:
		p.Message = msg.Busy
	default:
		p.Message = withCause("", err)
	}
	return p
}

// Messages returns the translations for the page's locale
func (p *Page) Messages() Messages {
	return MessagesFor(p.Locale)
}

// SetResults fills the table from parsed records
func (p *Page) SetResults(records []domain.TestCaseResult) {
	p.State = StateResults
	p.Records = records
	p.Table = FormatForDisplay(records, p.Locale)
	p.Summary = Summarize(records)
	if p.Table.Empty() {
		p.Message = p.Messages().NoTests
	}
}

// SetNotFound marks that no results document exists
func (p *Page) SetNotFound() {
	p.State = StateNotFound
	p.Message = p.Messages().NotFound
}

// SetParseError marks that the results document could not be read. No rows are kept.
func (p *Page) SetParseError(err error) {
	p.State = StateParseError
	p.Records = nil
	p.Table.Rows = []Row{}
	p.Summary = Summary{}
	p.Message = withCause(p.Messages().ParseError, err)
}

// SummaryText renders the summary line in the page's locale
func (p *Page) SummaryText() string {
	s := p.Summary
	return fmt.Sprintf(p.Messages().Summary, s.Total, s.Passed, s.Failed, s.Errors, s.Skipped, s.DurationSeconds)
}

// IsError reports whether the page reports a problem other than failing tests
func (p *Page) IsError() bool {
	switch p.State {
	case StateNotFound, StateParseError, StateLaunchError, StateTimeout, StateCancelled, StateBusy:
		return true
	}
	return false
}

func withCause(prefix string, err error) string {
	switch {
	case err == nil:
		return prefix
	case prefix == "":
		return err.Error()
	default:
		return prefix + ": " + err.Error()
	}
}
