package cli

import (
	"time"

	"testview/internal/config"
)

// Flags holds command-line flags
type Flags struct {
	ConfigFile  string
	ProjectPath string
	Command     string
	ReportFile  string
	Timeout     time.Duration
	Locale      string
	Addr        string
	LogLevel    string
	TestPath    string
	NameFilter  string
	TestCases   bool
	ExtraArgs   []string
}

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ConfigFile:  f.ConfigFile,
		ProjectPath: f.ProjectPath,
		Command:     f.Command,
		ReportFile:  f.ReportFile,
		Timeout:     f.Timeout,
		Locale:      f.Locale,
		Addr:        f.Addr,
		TestPath:    f.TestPath,
		NameFilter:  f.NameFilter,
		TestCases:   f.TestCases,
		ExtraArgs:   f.ExtraArgs,
	}
}
