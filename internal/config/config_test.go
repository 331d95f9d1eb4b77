package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestConfig_GetTestPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name: "default path",
			config: &Config{
				ProjectPath: ".",
				TestPath:    ".",
				Flags:       Flags{},
			},
			expected: ".",
		},
		{
			name: "with test path flag",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    ".",
				Flags: Flags{
					TestPath: "tests",
				},
			},
			expected: "/project/tests",
		},
		{
			name: "absolute test path",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    ".",
				Flags: Flags{
					TestPath: "/absolute/path",
				},
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.config.GetTestPath()
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestConfig_GetReportPath(t *testing.T) {
	t.Run("empty means per-run temp path", func(t *testing.T) {
		cfg := New()
		if got := cfg.GetReportPath(); got != "" {
			t.Errorf("expected empty report path, got %s", got)
		}
	})

	t.Run("relative to project", func(t *testing.T) {
		cfg := &Config{ProjectPath: "/project", ReportFile: "pytest_report.xml"}
		if got := cfg.GetReportPath(); got != "/project/pytest_report.xml" {
			t.Errorf("expected /project/pytest_report.xml, got %s", got)
		}
	})

	t.Run("absolute kept", func(t *testing.T) {
		cfg := &Config{ProjectPath: "/project", ReportFile: "/tmp/out.xml"}
		if got := cfg.GetReportPath(); got != "/tmp/out.xml" {
			t.Errorf("expected /tmp/out.xml, got %s", got)
		}
	})
}

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.ProjectPath != DefaultProjectPath {
		t.Errorf("expected ProjectPath %s, got %s", DefaultProjectPath, cfg.ProjectPath)
	}

	if cfg.Command != DefaultCommand {
		t.Errorf("expected Command %s, got %s", DefaultCommand, cfg.Command)
	}

	if cfg.Addr != "127.0.0.1:8501" {
		t.Errorf("expected the UI to listen on loopback by default, got %s", cfg.Addr)
	}

	if len(cfg.AllowedOrigins) != 0 {
		t.Errorf("expected no cross-origin access by default, got %v", cfg.AllowedOrigins)
	}

	if len(cfg.PathsToIgnore) != len(DefaultPathsToIgnore) {
		t.Errorf("expected %d paths to ignore, got %d", len(DefaultPathsToIgnore), len(cfg.PathsToIgnore))
	}

	// defaults must not be shared with the package-level slices
	cfg.Args[0] = "changed"
	if DefaultArgs[0] == "changed" {
		t.Error("New must copy DefaultArgs")
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate, got %v", err)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"empty command", func(c *Config) { c.Command = "  " }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
		{"unknown locale", func(c *Config) { c.Locale = "fr" }},
		{"no report placeholder", func(c *Config) { c.ReportArg = "--junitxml=out.xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}

	t.Run("placeholder in args is enough", func(t *testing.T) {
		cfg := New()
		cfg.ReportArg = ""
		cfg.Args = []string{"--junit-xml", ReportPlaceholder}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "testview-config-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	yamlContent := `command: python
args: ["-m", "pytest", "-q"]
report_file: report.xml
timeout: 30s
locale: ja
`
	if err := os.WriteFile(filepath.Join(tmpDir, DefaultConfigFile), []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	t.Run("yaml file from project", func(t *testing.T) {
		cfg, err := Load(Flags{ProjectPath: tmpDir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Command != "python" {
			t.Errorf("expected command python, got %s", cfg.Command)
		}
		if len(cfg.Args) != 3 {
			t.Errorf("expected 3 args, got %v", cfg.Args)
		}
		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected 30s timeout, got %s", cfg.Timeout)
		}
		if cfg.Locale != "ja" {
			t.Errorf("expected locale ja, got %s", cfg.Locale)
		}
		if cfg.GetReportPath() != filepath.Join(tmpDir, "report.xml") {
			t.Errorf("unexpected report path %s", cfg.GetReportPath())
		}
	})

	t.Run("environment overrides file", func(t *testing.T) {
		t.Setenv(EnvTimeout, "1m")
		cfg, err := Load(Flags{ProjectPath: tmpDir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Timeout != time.Minute {
			t.Errorf("expected 1m timeout, got %s", cfg.Timeout)
		}
	})

	t.Run("allowed origins from environment", func(t *testing.T) {
		t.Setenv(EnvOrigins, "https://a.example, https://b.example")
		cfg, err := Load(Flags{ProjectPath: tmpDir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.AllowedOrigins) != 2 || cfg.AllowedOrigins[0] != "https://a.example" || cfg.AllowedOrigins[1] != "https://b.example" {
			t.Errorf("unexpected origins %v", cfg.AllowedOrigins)
		}
	})

	t.Run("dotenv overrides file", func(t *testing.T) {
		envPath := filepath.Join(tmpDir, EnvFile)
		if err := os.WriteFile(envPath, []byte("TESTVIEW_ADDR=127.0.0.1:9000\n"), 0644); err != nil {
			t.Fatalf("failed to write .env: %v", err)
		}
		defer os.Remove(envPath)

		cfg, err := Load(Flags{ProjectPath: tmpDir})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Addr != "127.0.0.1:9000" {
			t.Errorf("expected addr from .env, got %s", cfg.Addr)
		}
	})

	t.Run("flags override everything", func(t *testing.T) {
		cfg, err := Load(Flags{ProjectPath: tmpDir, Command: "tox", Locale: "en"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Command != "tox" || cfg.Locale != "en" {
			t.Errorf("flags not applied: command=%s locale=%s", cfg.Command, cfg.Locale)
		}
	})

	t.Run("explicit missing config file fails", func(t *testing.T) {
		_, err := Load(Flags{ProjectPath: tmpDir, ConfigFile: filepath.Join(tmpDir, "nope.yaml")})
		if err == nil {
			t.Error("expected error for missing explicit config file")
		}
	})

	t.Run("invalid timeout in env", func(t *testing.T) {
		t.Setenv(EnvTimeout, "soon")
		_, err := Load(Flags{ProjectPath: tmpDir})
		if !errors.Is(err, ErrInvalid) {
			t.Errorf("expected ErrInvalid, got %v", err)
		}
	})
}
