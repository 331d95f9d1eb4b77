package execution

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/acarl005/stripansi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"testview/internal/config"
	"testview/internal/domain"
)

var (
	// ErrLaunch means the tool could not be started at all (missing or not executable)
	ErrLaunch = errors.New("failed to launch test tool")
	// ErrRunInProgress is returned when Run is called while another run is in flight
	ErrRunInProgress = errors.New("a test run is already in progress")
	// ErrTimeout is returned when the configured timeout elapsed before the tool exited
	ErrTimeout = errors.New("test run timed out")
	// ErrCancelled is returned when the caller's context ended the run early
	ErrCancelled = errors.New("test run cancelled")
)

// reportFileName is the document name inside a per-run temporary directory
const reportFileName = "report.xml"

// waitDelay bounds how long output pipes are drained after the tool is killed
const waitDelay = 2 * time.Second

// Runner executes the configured test tool, one run at a time
type Runner struct {
	config *config.Config
	mu     sync.Mutex
	log    *logrus.Entry
}

// NewRunner creates a new Runner
func NewRunner(cfg *config.Config) *Runner {
	return &Runner{
		config: cfg,
		log:    logrus.WithField("component", "runner"),
	}
}

// Run executes the tool synchronously and blocks until it exits or the
// configured timeout elapses. A nonzero exit code is not an error; callers
// must check RunResult.ReportExists separately. The caller owns the result
// and should call Cleanup once the report has been read.
func (r *Runner) Run(ctx context.Context, extraArgs ...string) (*domain.RunResult, error) {
	if !r.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer r.mu.Unlock()

	run := &domain.RunResult{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}

	reportPath, err := r.prepareReportPath(run)
	if err != nil {
		return nil, err
	}
	run.ReportPath = reportPath

	if r.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.config.Timeout)
		defer cancel()
	}

	args := r.buildArgs(reportPath, extraArgs)
	log := r.log.WithFields(logrus.Fields{
		"run_id":  run.ID,
		"command": r.config.Command,
		"args":    strings.Join(args, " "),
	})
	log.Info("Starting test run")

	cmd := exec.CommandContext(ctx, r.config.Command, args...)
	cmd.Env = os.Environ()
	cmd.Dir = r.config.ProjectPath
	cmd.WaitDelay = waitDelay

	output, err := cmd.CombinedOutput()
	run.Duration = time.Since(run.StartedAt)
	run.Output = stripansi.Strip(string(output))

	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded) && r.config.Timeout > 0:
			_ = run.Cleanup()
			log.WithField("timeout", r.config.Timeout).Warn("Test run timed out")
			return nil, fmt.Errorf("%w after %s", ErrTimeout, r.config.Timeout)
		case ctx.Err() != nil:
			_ = run.Cleanup()
			log.WithError(ctx.Err()).Warn("Test run cancelled")
			return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		case errors.As(err, &exitErr):
			run.ExitCode = exitErr.ExitCode()
		default:
			_ = run.Cleanup()
			log.WithError(err).Error("Failed to launch test tool")
			return nil, fmt.Errorf("%w %q: %v", ErrLaunch, r.config.Command, err)
		}
	}

	log.WithFields(logrus.Fields{
		"exit_code": run.ExitCode,
		"duration":  run.Duration.Round(time.Millisecond).String(),
	}).Info("Test run finished")

	return run, nil
}

// prepareReportPath removes a stale document at a fixed path, or creates a
// fresh temporary directory when no fixed path is configured.
func (r *Runner) prepareReportPath(run *domain.RunResult) (string, error) {
	if fixed := r.config.GetReportPath(); fixed != "" {
		if err := os.Remove(fixed); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("remove previous results document: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(fixed), 0755); err != nil {
			return "", fmt.Errorf("create results directory: %w", err)
		}
		return fixed, nil
	}

	dir, err := os.MkdirTemp("", "testview-"+run.ID[:8]+"-*")
	if err != nil {
		return "", fmt.Errorf("create run directory: %w", err)
	}
	run.SetTempDir(dir)
	return filepath.Join(dir, reportFileName), nil
}

// buildArgs expands the report placeholder in the configured arguments
func (r *Runner) buildArgs(reportPath string, extraArgs []string) []string {
	args := slices.Clone(r.config.Args)
	if r.config.ReportArg != "" {
		args = append(args, r.config.ReportArg)
	}
	args = append(args, extraArgs...)
	for i, a := range args {
		args[i] = strings.ReplaceAll(a, config.ReportPlaceholder, reportPath)
	}
	return args
}
