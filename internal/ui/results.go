package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"testview/internal/config"
	"testview/internal/domain"
	"testview/internal/report"
)

// ResultViewer displays the last run's test cases in an interactive TUI
type ResultViewer struct {
	config *config.Config
	out    io.Writer
}

// NewResultViewer creates a new ResultViewer
func NewResultViewer(cfg *config.Config) *ResultViewer {
	return &ResultViewer{config: cfg, out: os.Stdout}
}

// SetOutput redirects the messages printed instead of opening the viewer
func (rv *ResultViewer) SetOutput(w io.Writer) {
	rv.out = w
}

// View displays every test case of the snapshot with a detail pane
func (rv *ResultViewer) View(snapshot *domain.Snapshot) error {
	msg := report.MessagesFor(report.Locale(rv.config.Locale))
	// a run without a readable document is not the same as a run with no tests
	switch report.State(snapshot.Meta.State) {
	case report.StateNotFound:
		color.New(color.FgYellow).Fprintf(rv.out, "⚠ %s\n", msg.NotFound)
		return nil
	case report.StateParseError:
		color.New(color.FgRed).Fprintf(rv.out, "✗ %s\n", msg.ParseError)
		return nil
	}
	if len(snapshot.Results) == 0 {
		color.New(color.FgCyan).Fprintf(rv.out, "ℹ %s\n", msg.NoTests)
		return nil
	}

	app := tview.NewApplication()
	problemsOnly := false
	visible := visibleIndexes(snapshot.Results, problemsOnly)

	// Create list for test cases (left side)
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	// Create stats header view (shows unit and test case)
	statsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	// Create text view for details (right side)
	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	rightSide := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(statsView, 3, 0, false).
		AddItem(detailsContainer, 0, 1, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(rightSide, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	updateHeader := func() {
		mode := "all"
		if problemsOnly {
			mode = "failed/errored only"
		}
		headerView.SetText(fmt.Sprintf(" %s: %s (%s) | ↑↓ navigate, [yellow]F[white] toggle filter, → details, ← back, Q to exit ",
			msg.ResultsTitle, formatMeta(snapshot.Meta), mode))
	}

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index < 0 || index >= len(visible) {
			statsView.SetText("")
			detailsView.SetText("")
			return
		}
		result := snapshot.Results[visible[index]]
		statsView.SetText(formatResultStats(result))
		detailsView.SetText(formatResultDetails(result, msg))
		detailsView.ScrollToBeginning()
	}

	fillList := func() {
		list.Clear()
		for _, i := range visible {
			list.AddItem(listItemText(snapshot.Results[i], msg), "", 0, nil)
		}
		updateHeader()
		updateDetails()
	}

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'f', 'F':
				problemsOnly = !problemsOnly
				visible = visibleIndexes(snapshot.Results, problemsOnly)
				fillList()
				return nil
			case 'q', 'Q':
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	list.SetChangedFunc(func(index int, mainText string, secondaryText string, shortcut rune) {
		updateDetails()
	})

	fillList()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

// visibleIndexes returns the result indexes to list, in order
func visibleIndexes(results []domain.TestCaseResult, problemsOnly bool) []int {
	indexes := make([]int, 0, len(results))
	for i, r := range results {
		if problemsOnly && !r.Outcome.IsProblem() {
			continue
		}
		indexes = append(indexes, i)
	}
	return indexes
}

// listItemText formats one list entry using tview color tags
func listItemText(r domain.TestCaseResult, msg report.Messages) string {
	label, c := report.Classify(r.Outcome, msg)
	name := r.Name
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("[%s]%s[white] %s", tviewColor(c), tview.Escape(label), tview.Escape(name))
}

// formatResultStats formats the header line for a test case
func formatResultStats(r domain.TestCaseResult) string {
	unit := r.ContainingUnit
	if unit == "" {
		unit = "Unknown unit"
	}
	return fmt.Sprintf("[cyan]unit:[white] [yellow]%s[white]::[yellow]%s[white]  [cyan]time:[white] %ss\n",
		tview.Escape(unit), tview.Escape(r.Name), report.FormatSeconds(r.DurationSeconds))
}

// formatResultDetails formats a test case's detail for the right pane
func formatResultDetails(r domain.TestCaseResult, msg report.Messages) string {
	label, c := report.Classify(r.Outcome, msg)

	var builder strings.Builder
	fmt.Fprintf(&builder, "[%s]%s[white]\n\n", tviewColor(c), tview.Escape(label))
	if r.Detail == "" {
		builder.WriteString("[gray](no detail)[white]\n")
		return builder.String()
	}
	builder.WriteString(tview.Escape(r.Detail))
	builder.WriteString("\n")
	return builder.String()
}

func formatMeta(m domain.SnapshotMeta) string {
	return fmt.Sprintf("%d total, %d passed, %d failed, %d errors, %d skipped, exit %d",
		m.Total, m.Passed, m.Failed, m.Errors, m.Skipped, m.ExitCode)
}

func tviewColor(c report.Color) string {
	switch c {
	case report.ColorGreen:
		return "green"
	case report.ColorRed:
		return "red"
	case report.ColorGray:
		return "gray"
	default:
		return "white"
	}
}
