package config

import "time"

const (
	// DefaultProjectPath is the directory the test tool runs in
	DefaultProjectPath = "."
	// DefaultTestPath is where test discovery starts, relative to the project
	DefaultTestPath = "."
	// DefaultCommand is the external test tool
	DefaultCommand = "pytest"
	// ReportPlaceholder is replaced by the results document path in tool arguments
	ReportPlaceholder = "{report}"
	// DefaultReportArg asks the tool to write a JUnit XML document
	DefaultReportArg = "--junitxml=" + ReportPlaceholder
	// DefaultTimeout of zero means the run is never interrupted
	DefaultTimeout = time.Duration(0)
	// DefaultAddr is the listen address of the browser UI. Loopback only:
	// the UI starts processes and shows their output.
	DefaultAddr = "127.0.0.1:8501"
	// DefaultLocale selects the language of table headers and messages
	DefaultLocale = "en"
	// DefaultOutputJSONFile is the file holding the last-run snapshot
	DefaultOutputJSONFile = "last-run.json"
	// DefaultOutputJSONDir is the directory holding the last-run snapshot
	DefaultOutputJSONDir = ".testview"
	// DefaultConfigFile is looked up in the project when --config is not given
	DefaultConfigFile = "testview.yaml"
	// EnvFile is loaded from the project directory when present
	EnvFile = ".env"
)

// DefaultArgs are passed to the tool before the report argument
var DefaultArgs = []string{"-vv"}

// SupportedLocales are the locales with translated headers and messages
var SupportedLocales = []string{"en", "ja"}

// DefaultPathsToIgnore are the default directories to ignore when scanning for tests
var DefaultPathsToIgnore = []string{
	"venv",
	".venv",
	"env",
	"node_modules",
	"__pycache__",
	"site-packages",
	"build",
	"dist",
}

// DefaultTestFilePatterns match the files pytest collects by default
var DefaultTestFilePatterns = []string{
	"test_*.py",
	"*_test.py",
}
