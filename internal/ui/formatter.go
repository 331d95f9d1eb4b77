package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"testview/internal/config"
	"testview/internal/discovery"
	"testview/internal/report"
)

// maxDetailWidth bounds the detail column; full details are printed below the table
const maxDetailWidth = 60

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	parser *discovery.Parser
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to stdout
func NewFormatter(cfg *config.Config, parser *discovery.Parser) *Formatter {
	return &Formatter{
		config: cfg,
		parser: parser,
		out:    os.Stdout,
	}
}

// SetOutput redirects everything the formatter prints
func (f *Formatter) SetOutput(w io.Writer) {
	f.out = w
}

// PrintPage prints the banner, the results table and any problem details
func (f *Formatter) PrintPage(page *report.Page) {
	f.printBanner(page)

	switch page.State {
	case report.StateResults:
		if page.Table.Empty() {
			color.New(color.FgCyan).Fprintf(f.out, "ℹ %s\n", page.Message)
			return
		}
		fmt.Fprintln(f.out)
		f.printTable(page.Table)
		fmt.Fprintln(f.out)
		fmt.Fprintln(f.out, page.SummaryText())
		f.printProblems(page.Table)
	case report.StateNotFound, report.StateBusy, report.StateCancelled:
		color.New(color.FgYellow).Fprintf(f.out, "⚠ %s\n", page.Message)
	case report.StateParseError, report.StateLaunchError, report.StateTimeout:
		color.New(color.FgRed).Fprintf(f.out, "✗ %s\n", page.Message)
	default:
		if page.Message != "" {
			fmt.Fprintln(f.out, page.Message)
		}
	}
}

func (f *Formatter) printBanner(page *report.Page) {
	switch page.Banner {
	case report.BannerSuccess:
		color.New(color.FgGreen, color.Bold).Fprintf(f.out, "✓ %s\n", page.BannerText)
	case report.BannerFailure:
		color.New(color.FgRed, color.Bold).Fprintf(f.out, "✗ %s\n", page.BannerText)
	}
}

func (f *Formatter) printTable(t report.Table) {
	tw := table.NewWriter()
	tw.SetOutputMirror(f.out)
	tw.SetStyle(table.StyleLight)
	// headers are already translated; keep them as written
	tw.Style().Format.Header = text.FormatDefault

	header := table.Row{}
	for _, c := range t.Columns {
		header = append(header, c)
	}
	tw.AppendHeader(header)

	for _, row := range t.Rows {
		tw.AppendRow(table.Row{
			row.ContainingUnit,
			row.Name,
			colorFor(row.Color).Sprint(row.Result),
			row.Duration,
			firstLine(row.Detail, maxDetailWidth),
		})
	}
	tw.Render()
}

// printProblems prints the full detail of failed and errored cases
func (f *Formatter) printProblems(t report.Table) {
	var problems []report.Row
	for _, row := range t.Rows {
		if row.Outcome.IsProblem() && row.Detail != "" {
			problems = append(problems, row)
		}
	}
	if len(problems) == 0 {
		return
	}

	red := color.New(color.FgRed)
	for _, row := range problems {
		fmt.Fprintln(f.out)
		red.Fprintf(f.out, "%s %s::%s\n", row.Result, row.ContainingUnit, row.Name)
		for _, line := range strings.Split(row.Detail, "\n") {
			fmt.Fprintf(f.out, "    %s\n", line)
		}
	}
}

// PrintTestList prints a list of test files, optionally with test cases.
func (f *Formatter) PrintTestList(tests []string, showTestCases bool) error {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	if !showTestCases {
		green.Fprintf(f.out, "Found %d test file(s):\n\n", len(tests))
		for i, test := range tests {
			if i == len(tests)-1 {
				cyan.Fprintf(f.out, "└── %s\n", f.relPath(test))
			} else {
				cyan.Fprintf(f.out, "├── %s\n", f.relPath(test))
			}
		}
		return nil
	}

	// Display tree view with test cases
	green.Fprintf(f.out, "Found %d test file(s) with test cases:\n\n", len(tests))
	total := 0

	for i, test := range tests {
		testCases, err := f.parser.FindTestCases(test)
		if err != nil {
			color.New(color.FgRed).Fprintf(f.out, "Error reading test file %s: %v\n", test, err)
			continue
		}
		total += len(testCases)

		// Print test file as root node
		isLastFile := i == len(tests)-1
		if isLastFile {
			cyan.Fprintf(f.out, "└── %s\n", f.relPath(test))
		} else {
			cyan.Fprintf(f.out, "├── %s\n", f.relPath(test))
		}

		indent := "│   "
		if isLastFile {
			indent = "    "
		}

		// Print test cases as children
		if len(testCases) == 0 {
			fmt.Fprintf(f.out, "%s└── %s\n", indent, color.RedString("(no test cases found)"))
		}
		for j, testCase := range testCases {
			branch := "├── "
			if j == len(testCases)-1 {
				branch = "└── "
			}
			fmt.Fprintf(f.out, "%s%s%s\n", indent, branch, color.YellowString(testCase))
		}

		// Add spacing between files (except for the last one)
		if !isLastFile {
			fmt.Fprintln(f.out)
		}
	}

	fmt.Fprintln(f.out)
	green.Fprintf(f.out, "%d test case(s) in total\n", total)
	return nil
}

// relPath returns the path relative to the project for cleaner display
func (f *Formatter) relPath(path string) string {
	rel, err := filepath.Rel(f.config.ProjectPath, path)
	if err != nil {
		return path
	}
	return rel
}

func colorFor(c report.Color) *color.Color {
	switch c {
	case report.ColorGreen:
		return color.New(color.FgGreen)
	case report.ColorRed:
		return color.New(color.FgRed)
	case report.ColorGray:
		return color.New(color.FgHiBlack)
	default:
		return color.New(color.Reset)
	}
}

// firstLine returns the first line of s, cut to at most width runes
func firstLine(s string, width int) string {
	line, rest, multi := strings.Cut(s, "\n")
	runes := []rune(line)
	if len(runes) > width {
		return string(runes[:width-1]) + "…"
	}
	if multi && rest != "" {
		return line + " …"
	}
	return line
}
