package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"testview/internal/config"
	"testview/internal/discovery"
	"testview/internal/ui"
)

// ListCommand handles the list command
type ListCommand struct {
	config    *config.Config
	filter    *discovery.Filter
	formatter *ui.Formatter
}

// NewListCommand creates a new ListCommand
func NewListCommand(
	cfg *config.Config,
	filter *discovery.Filter,
	formatter *ui.Formatter,
) *ListCommand {
	return &ListCommand{
		config:    cfg,
		filter:    filter,
		formatter: formatter,
	}
}

// Execute runs the command
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	scanner := discovery.NewScanner(lc.config.PathsToIgnore, lc.config.TestFilePatterns)
	tests, err := scanner.Scan(lc.config.GetTestPath())
	if err != nil {
		return err
	}

	// Filter tests
	tests = lc.filter.FilterByName(tests, lc.config.Flags.NameFilter)

	if len(tests) == 0 {
		color.Yellow("No tests found")
		return nil
	}

	return lc.formatter.PrintTestList(tests, lc.config.Flags.TestCases)
}
