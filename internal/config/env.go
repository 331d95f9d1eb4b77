package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognised in the process environment and the project's .env
const (
	EnvCommand    = "TESTVIEW_COMMAND"
	EnvArgs       = "TESTVIEW_ARGS"
	EnvReportFile = "TESTVIEW_REPORT_FILE"
	EnvTimeout    = "TESTVIEW_TIMEOUT"
	EnvAddr       = "TESTVIEW_ADDR"
	EnvLocale     = "TESTVIEW_LOCALE"
	EnvOrigins    = "TESTVIEW_ALLOWED_ORIGINS"
)

// applyEnv merges the project's .env file and the process environment into c.
// Process variables win over .env values, as with godotenv.Load.
func (c *Config) applyEnv() error {
	vars, err := godotenv.Read(filepath.Join(c.ProjectPath, EnvFile))
	if err != nil {
		// .env file might not exist, that's okay - use environment variables
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("read %s: %w", EnvFile, err)
		}
		vars = map[string]string{}
	}

	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return vars[key]
	}

	if v := lookup(EnvCommand); v != "" {
		c.Command = v
	}
	if v := lookup(EnvArgs); v != "" {
		c.Args = strings.Fields(v)
	}
	if v := lookup(EnvReportFile); v != "" {
		c.ReportFile = v
	}
	if v := lookup(EnvTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvTimeout, v, err)
		}
		c.Timeout = d
	}
	if v := lookup(EnvAddr); v != "" {
		c.Addr = v
	}
	if v := lookup(EnvLocale); v != "" {
		c.Locale = v
	}
	if v := lookup(EnvOrigins); v != "" {
		c.AllowedOrigins = strings.FieldsFunc(v, func(r rune) bool { return r == ',' || r == ' ' })
	}
	return nil
}
