package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"testview/internal/cli"
	"testview/internal/config"
	"testview/internal/discovery"
	"testview/internal/execution"
	"testview/internal/parser"
	"testview/internal/pipeline"
	"testview/internal/report"
	"testview/internal/storage"
	"testview/internal/ui"
)

// ExitError carries the process exit code a command finished with
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// exitFor maps a rendered page to the process exit code: the tool's own code
// for parsed results, 1 for everything that kept results from being shown.
func exitFor(page *report.Page) error {
	code := 0
	switch {
	case page.State == report.StateResults:
		code = page.ExitCode
	case page.IsError():
		code = 1
	}
	if code == 0 {
		return nil
	}
	return &ExitError{Code: code}
}

// Commands holds all CLI commands
type Commands struct {
	Run   *RunCommand
	Show  *ShowCommand
	List  *ListCommand
	View  *ViewCommand
	Serve *ServeCommand
}

// NewCommands creates all commands with dependencies. cfg is filled in place
// once flags are parsed, so dependencies read it lazily.
func NewCommands(cfg *config.Config) *Commands {
	// Initialize dependencies
	filter := discovery.NewFilter()
	testCaseParser := discovery.NewParser()
	runner := execution.NewRunner(cfg)
	junitParser := parser.NewJUnitParser()
	jsonStorage := storage.NewJSONStorage(cfg)
	pl := pipeline.New(cfg, runner, junitParser, jsonStorage)
	formatter := ui.NewFormatter(cfg, testCaseParser)
	resultViewer := ui.NewResultViewer(cfg)

	return &Commands{
		Run:   NewRunCommand(cfg, pl, formatter),
		Show:  NewShowCommand(cfg, pl, filter, formatter),
		List:  NewListCommand(cfg, filter, formatter),
		View:  NewViewCommand(cfg, jsonStorage, resultViewer),
		Serve: NewServeCommand(cfg, pl),
	}
}

// Register registers all commands with cobra
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.ConfigFile, "config", "", "Path to a YAML config file (default: testview.yaml in the project)")
	pf.StringVarP(&flags.ProjectPath, "project", "p", "", "Project directory the test tool runs in")
	pf.StringVar(&flags.Command, "command", "", "Test tool executable (default: pytest)")
	pf.StringVar(&flags.ReportFile, "report-file", "", "Fixed path for the results document (default: a fresh temporary file per run)")
	pf.DurationVar(&flags.Timeout, "timeout", 0, "Kill the test tool after this long (0 disables the timeout)")
	pf.StringVar(&flags.Locale, "locale", "", "Display language: en or ja")
	pf.StringVar(&flags.LogLevel, "log-level", "warning", "Log level: debug, info, warning, error")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(flags.LogLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		loaded, err := config.Load(flags.ToConfigFlags())
		if err != nil {
			return err
		}
		*cfg = *loaded
		return nil
	}

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [-- tool args...]",
		Short: "Run the test tool and show its results",
		Long:  "Execute the configured test tool, read the JUnit XML document it writes and render the results table",
		Args:  cobra.ArbitraryArgs,
		RunE:  c.Run.Execute,
	}
	rootCmd.AddCommand(runCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:   "show [report.xml]",
		Short: "Show an existing results document",
		Long:  "Render a JUnit XML document without running anything (defaults to the configured report file)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  c.Show.Execute,
	}
	showCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter cases by name pattern (supports wildcards, e.g., 'test_add*' or '*login*')")
	rootCmd.AddCommand(showCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered tests",
		Long:  "Scan and list all pytest test files without executing them",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter tests by name pattern (supports wildcards, e.g., 'test_user*.py' or '*payment*')")
	listCmd.Flags().StringVarP(&flags.TestPath, "test-path", "t", "", "Path to the folder where test detection should start")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test cases instead of test files")
	rootCmd.AddCommand(listCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the last run interactively",
		Long:  "Display the cases of the last run in an interactive terminal viewer",
		RunE:  c.View.Execute,
	}
	rootCmd.AddCommand(viewCmd)

	// Serve command
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the browser UI",
		Long:  "Serve a page with a button that runs the tests and shows the results table",
		RunE:  c.Serve.Execute,
	}
	serveCmd.Flags().StringVar(&flags.Addr, "addr", "", "Address to listen on (default: 127.0.0.1:8501)")
	rootCmd.AddCommand(serveCmd)
}
