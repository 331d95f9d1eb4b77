package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

// ErrInvalid is returned when the resolved configuration cannot be used
var ErrInvalid = errors.New("invalid configuration")

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	TestPath    string

	// Test tool invocation
	Command    string
	Args       []string
	ReportArg  string
	ReportFile string
	Timeout    time.Duration

	// Presentation settings
	Addr   string
	Locale string

	// Origins allowed to call the browser UI cross-origin; empty allows none
	AllowedOrigins []string

	// Last-run snapshot
	OutputJSONFile string
	OutputJSONDir  string

	// Discovery settings
	PathsToIgnore    []string
	TestFilePatterns []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ConfigFile  string
	ProjectPath string
	Command     string
	ReportFile  string
	Timeout     time.Duration
	Locale      string
	Addr        string
	TestPath    string
	NameFilter  string
	TestCases   bool
	ExtraArgs   []string
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		TestPath:       DefaultTestPath,
		Command:        DefaultCommand,
		Args:           slices.Clone(DefaultArgs),
		ReportArg:      DefaultReportArg,
		Timeout:        DefaultTimeout,
		Addr:           DefaultAddr,
		Locale:         DefaultLocale,
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.PathsToIgnore = slices.Clone(DefaultPathsToIgnore)
	cfg.TestFilePatterns = slices.Clone(DefaultTestFilePatterns)
	return cfg
}

// Load creates a config from defaults, the optional YAML file, the environment
// (including the project's .env) and finally the given flags, in that order.
func Load(flags Flags) (*Config, error) {
	cfg := New()
	if flags.ProjectPath != "" {
		cfg.ProjectPath = flags.ProjectPath
	}

	if err := cfg.applyFile(flags.ConfigFile); err != nil {
		return nil, err
	}
	if flags.ProjectPath != "" {
		cfg.ProjectPath = flags.ProjectPath
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	cfg.applyFlags(flags)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyFlags overrides settings with non-zero flag values
func (c *Config) applyFlags(flags Flags) {
	c.Flags = flags

	if flags.ProjectPath != "" {
		c.ProjectPath = flags.ProjectPath
	}
	if flags.Command != "" {
		c.Command = flags.Command
	}
	if flags.ReportFile != "" {
		c.ReportFile = flags.ReportFile
	}
	if flags.Timeout > 0 {
		c.Timeout = flags.Timeout
	}
	if flags.Locale != "" {
		c.Locale = flags.Locale
	}
	if flags.Addr != "" {
		c.Addr = flags.Addr
	}
}

// Validate checks that the tool can be invoked and told where to write its results
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Command) == "" {
		return fmt.Errorf("%w: command must not be empty", ErrInvalid)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("%w: timeout must not be negative", ErrInvalid)
	}
	if !slices.Contains(SupportedLocales, c.Locale) {
		return fmt.Errorf("%w: unsupported locale %q (supported: %s)", ErrInvalid, c.Locale, strings.Join(SupportedLocales, ", "))
	}
	if !strings.Contains(c.ReportArg, ReportPlaceholder) && !slices.ContainsFunc(c.Args, func(a string) bool {
		return strings.Contains(a, ReportPlaceholder)
	}) {
		return fmt.Errorf("%w: no argument contains the %s placeholder", ErrInvalid, ReportPlaceholder)
	}
	return nil
}

// GetTestPath returns the test path, using flag if provided
func (c *Config) GetTestPath() string {
	if c.Flags.TestPath != "" {
		// If TestPath is provided, make it relative to the project if it's not absolute
		if filepath.IsAbs(c.Flags.TestPath) {
			return c.Flags.TestPath
		}
		return filepath.Join(c.ProjectPath, c.Flags.TestPath)
	}

	return filepath.Join(c.ProjectPath, c.TestPath)
}

// GetOutputPath returns the absolute path of the last-run snapshot so every
// command reads and writes the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetReportPath returns the fixed results document path, or "" when every run
// should get a fresh temporary path.
func (c *Config) GetReportPath() string {
	if c.ReportFile == "" {
		return ""
	}
	p := c.ReportFile
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.ProjectPath, p)
	}
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
