package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"testview/internal/config"
	"testview/internal/server"
)

// ServeCommand handles the serve command
type ServeCommand struct {
	config *config.Config
	source server.PageSource
}

// NewServeCommand creates a new ServeCommand
func NewServeCommand(cfg *config.Config, source server.PageSource) *ServeCommand {
	return &ServeCommand{
		config: cfg,
		source: source,
	}
}

// Execute runs the command
func (sc *ServeCommand) Execute(cmd *cobra.Command, args []string) error {
	srv, err := server.New(sc.config, sc.source)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	color.Cyan("Browser UI listening on %s (Ctrl+C to stop)", sc.config.Addr)
	return srv.Start(ctx)
}
