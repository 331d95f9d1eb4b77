package ui

import "testview/internal/domain"

// Viewer displays a run's results in an interactive TUI
type Viewer interface {
	View(snapshot *domain.Snapshot) error
}
