package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"testview/internal/config"
	"testview/internal/discovery"
	"testview/internal/domain"
	"testview/internal/pipeline"
	"testview/internal/report"
	"testview/internal/ui"
)

// ShowCommand handles the show command
type ShowCommand struct {
	config    *config.Config
	pipeline  *pipeline.Pipeline
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cfg *config.Config, pl *pipeline.Pipeline, filter *discovery.Filter, formatter *ui.Formatter) *ShowCommand {
	return &ShowCommand{
		config:    cfg,
		pipeline:  pl,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	path := sc.config.GetReportPath()
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		return errors.New("no results document given and no report file configured")
	}

	page := sc.pipeline.Show(path)
	if page.State == report.StateResults && sc.config.Flags.NameFilter != "" {
		page.SetResults(sc.filterRecords(page.Records, sc.config.Flags.NameFilter))
	}

	sc.formatter.PrintPage(page)
	return exitFor(page)
}

// filterRecords keeps the records whose case name matches pattern
func (sc *ShowCommand) filterRecords(records []domain.TestCaseResult, pattern string) []domain.TestCaseResult {
	filtered := make([]domain.TestCaseResult, 0, len(records))
	for _, r := range records {
		if sc.filter.Match(r.Name, pattern) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
