// Package pipeline turns one user action into a render-ready page: run the
// test tool, check for its results document, parse it and map it for display.
package pipeline

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/sirupsen/logrus"

	"testview/internal/config"
	"testview/internal/domain"
	"testview/internal/execution"
	"testview/internal/metrics"
	"testview/internal/parser"
	"testview/internal/report"
	"testview/internal/storage"
)

// Pipeline runs tests and interprets their results
type Pipeline struct {
	config   *config.Config
	executor execution.Executor
	parser   parser.Parser
	storage  storage.Storage
	log      *logrus.Entry
}

// New creates a new Pipeline. storage may be nil to skip saving snapshots.
func New(cfg *config.Config, executor execution.Executor, p parser.Parser, st storage.Storage) *Pipeline {
	return &Pipeline{
		config:   cfg,
		executor: executor,
		parser:   p,
		storage:  st,
		log:      logrus.WithField("component", "pipeline"),
	}
}

// Execute runs the test tool and renders whatever it produced. Every failure
// is turned into a page state; nothing is returned as an error.
func (p *Pipeline) Execute(ctx context.Context, extraArgs ...string) *report.Page {
	locale := p.locale()

	run, err := p.executor.Run(ctx, extraArgs...)
	if err != nil {
		page := report.NewErrorPage(stateFor(err), err, locale)
		metrics.RecordError(string(page.State))
		metrics.RecordRun(string(page.State), 0)
		return page
	}
	defer func() {
		if err := run.Cleanup(); err != nil {
			p.log.WithError(err).WithField("run_id", run.ID).Warn("Failed to remove run directory")
		}
	}()

	page := report.NewRunPage(run, locale)
	if run.ReportExists() {
		p.interpret(page, run.ReportPath)
	} else {
		page.SetNotFound()
	}

	if page.IsError() {
		metrics.RecordError(string(page.State))
	}
	metrics.RecordCases(page.Records)
	metrics.RecordRun(string(page.State), run.Duration)

	p.saveSnapshot(page, run)
	return page
}

// Show renders an existing results document without running anything
func (p *Pipeline) Show(path string) *report.Page {
	page := report.NewPage(p.locale())
	page.Message = ""
	page.Source = path
	p.interpret(page, path)
	return page
}

// interpret parses the document at path into page, recovering parse errors
func (p *Pipeline) interpret(page *report.Page, path string) {
	records, err := p.parser.Parse(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		page.SetNotFound()
	case err != nil:
		p.log.WithError(err).WithField("path", path).Warn("Failed to parse results document")
		page.SetParseError(err)
	default:
		page.SetResults(records)
	}
}

func (p *Pipeline) saveSnapshot(page *report.Page, run *domain.RunResult) {
	if p.storage == nil {
		return
	}
	s := page.Summary
	snapshot := &domain.Snapshot{
		Meta: domain.SnapshotMeta{
			RunID:           run.ID,
			ExitCode:        run.ExitCode,
			State:           string(page.State),
			Total:           s.Total,
			Passed:          s.Passed,
			Failed:          s.Failed,
			Errors:          s.Errors,
			Skipped:         s.Skipped,
			DurationSeconds: run.Duration.Seconds(),
			Timestamp:       run.StartedAt.Format(time.RFC3339),
		},
		Results: page.Records,
	}
	if snapshot.Results == nil {
		snapshot.Results = []domain.TestCaseResult{}
	}
	if err := p.storage.Save(snapshot); err != nil {
		p.log.WithError(err).Warn("Failed to save last-run snapshot")
	}
}

func (p *Pipeline) locale() report.Locale {
	return report.Locale(p.config.Locale)
}

func stateFor(err error) report.State {
	switch {
	case errors.Is(err, execution.ErrRunInProgress):
		return report.StateBusy
	case errors.Is(err, execution.ErrTimeout):
		return report.StateTimeout
	case errors.Is(err, execution.ErrCancelled):
		return report.StateCancelled
	default:
		return report.StateLaunchError
	}
}
