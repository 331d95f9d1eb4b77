package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional testview.yaml file
type fileConfig struct {
	ProjectPath      string   `yaml:"project_path"`
	TestPath         string   `yaml:"test_path"`
	Command          string   `yaml:"command"`
	Args             []string `yaml:"args"`
	ReportArg        string   `yaml:"report_arg"`
	ReportFile       string   `yaml:"report_file"`
	Timeout          string   `yaml:"timeout"`
	Addr             string   `yaml:"addr"`
	AllowedOrigins   []string `yaml:"allowed_origins"`
	Locale           string   `yaml:"locale"`
	PathsToIgnore    []string `yaml:"paths_to_ignore"`
	TestFilePatterns []string `yaml:"test_file_patterns"`
}

// applyFile merges the YAML config file into c. An explicit path must exist;
// the default project file is optional.
func (c *Config) applyFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = filepath.Join(c.ProjectPath, DefaultConfigFile)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrInvalid, path, err)
	}

	if fc.ProjectPath != "" {
		c.ProjectPath = fc.ProjectPath
	}
	if fc.TestPath != "" {
		c.TestPath = fc.TestPath
	}
	if fc.Command != "" {
		c.Command = fc.Command
	}
	if fc.Args != nil {
		c.Args = fc.Args
	}
	if fc.ReportArg != "" {
		c.ReportArg = fc.ReportArg
	}
	if fc.ReportFile != "" {
		c.ReportFile = fc.ReportFile
	}
	if fc.Timeout != "" {
		d, err := time.ParseDuration(fc.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout %q: %v", ErrInvalid, fc.Timeout, err)
		}
		c.Timeout = d
	}
	if fc.Addr != "" {
		c.Addr = fc.Addr
	}
	if fc.Locale != "" {
		c.Locale = fc.Locale
	}
	if fc.AllowedOrigins != nil {
		c.AllowedOrigins = fc.AllowedOrigins
	}
	if fc.PathsToIgnore != nil {
		c.PathsToIgnore = fc.PathsToIgnore
	}
	if fc.TestFilePatterns != nil {
		c.TestFilePatterns = fc.TestFilePatterns
	}
	return nil
}
