package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"testview/internal/config"
	"testview/internal/pipeline"
	"testview/internal/ui"
)

// RunCommand handles the run command
type RunCommand struct {
	config    *config.Config
	pipeline  *pipeline.Pipeline
	formatter *ui.Formatter
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, pl *pipeline.Pipeline, formatter *ui.Formatter) *RunCommand {
	return &RunCommand{
		config:    cfg,
		pipeline:  pl,
		formatter: formatter,
	}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	extraArgs, err := toolArgs(cmd, args)
	if err != nil {
		return err
	}
	rc.config.Flags.ExtraArgs = extraArgs

	spinner := ui.NewSpinner(fmt.Sprintf("Running %s", rc.config.Command))
	spinner.Start()
	page := rc.pipeline.Execute(cmd.Context(), extraArgs...)
	spinner.Stop()

	rc.formatter.PrintPage(page)
	return exitFor(page)
}

// toolArgs returns the arguments given after "--"; anything before it is rejected
func toolArgs(cmd *cobra.Command, args []string) ([]string, error) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		if len(args) > 0 {
			return nil, fmt.Errorf("unexpected arguments %v: pass tool arguments after --", args)
		}
		return nil, nil
	}
	if dash > 0 {
		return nil, fmt.Errorf("unexpected arguments %v: pass tool arguments after --", args[:dash])
	}
	return args[dash:], nil
}
