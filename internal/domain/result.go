package domain

import (
	"os"
	"time"
)

// TestCaseResult is one executed test case as read from a results document
type TestCaseResult struct {
	ContainingUnit  string  `json:"containing_unit"`
	Name            string  `json:"name"`
	Outcome         Outcome `json:"outcome"`
	DurationSeconds float64 `json:"duration_seconds"`
	Detail          string  `json:"detail"`
}

// RunResult is the outcome of a single invocation of the external test tool
type RunResult struct {
	ID         string        // Unique run identifier
	ExitCode   int           // Exit code reported by the tool
	ReportPath string        // Where the tool was told to write its results document
	Output     string        // Combined stdout/stderr, ANSI escapes stripped
	StartedAt  time.Time     // When the tool was launched
	Duration   time.Duration // Wall time of the invocation

	tempDir string
}

// SetTempDir records a per-run directory owned by this result.
func (r *RunResult) SetTempDir(dir string) {
	r.tempDir = dir
}

// Passed reports whether the tool signalled that every case passed
func (r *RunResult) Passed() bool {
	return r.ExitCode == 0
}

// ReportExists checks whether the tool actually wrote its results document.
// A nonzero exit code says nothing about this.
func (r *RunResult) ReportExists() bool {
	info, err := os.Stat(r.ReportPath)
	return err == nil && !info.IsDir()
}

// Cleanup removes the per-run temporary directory, if one was used.
func (r *RunResult) Cleanup() error {
	if r.tempDir == "" {
		return nil
	}
	dir := r.tempDir
	r.tempDir = ""
	return os.RemoveAll(dir)
}

// SnapshotMeta contains metadata about the last run
type SnapshotMeta struct {
	RunID           string  `json:"run_id"`
	ExitCode        int     `json:"exit_code"`
	State           string  `json:"state"`
	Total           int     `json:"total"`
	Passed          int     `json:"passed"`
	Failed          int     `json:"failed"`
	Errors          int     `json:"errors"`
	Skipped         int     `json:"skipped"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// Snapshot is the persisted form of the last run, overwritten on every run
type Snapshot struct {
	Meta    SnapshotMeta     `json:"meta"`
	Results []TestCaseResult `json:"results"`
}
