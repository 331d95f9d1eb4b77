package commands

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"testview/internal/config"
	"testview/internal/storage"
	"testview/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	config  *config.Config
	storage storage.Storage
	viewer  ui.Viewer
}

// NewViewCommand creates a new ViewCommand
func NewViewCommand(cfg *config.Config, st storage.Storage, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{
		config:  cfg,
		storage: st,
		viewer:  viewer,
	}
}

// Execute runs the command
func (vc *ViewCommand) Execute(cmd *cobra.Command, args []string) error {
	snapshot, err := vc.storage.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("no last run found at %s: run \"testview run\" first", vc.config.GetOutputPath())
	}
	if err != nil {
		return err
	}

	return vc.viewer.View(snapshot)
}
