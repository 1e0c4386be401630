package cmd

import (
	"fmt"

	"github.com/smithfarm/handson/pkg/cli/cmd/install"
	"github.com/smithfarm/handson/pkg/cli/cmd/probe"
	"github.com/smithfarm/handson/pkg/cli/helpers"
	"github.com/smithfarm/handson/pkg/cli/ui/errorhandler"
	runtime "github.com/smithfarm/handson/pkg/di"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	runtimeContainer := runtime.NewRuntime()

	cmd := &cobra.Command{
		Use:          "ho",
		Short:        "ho provisions and probes hands-on training labs on AWS",
		Long:         "ho provisions and probes hands-on training labs on AWS",
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	helpers.RegisterConfigFlag(cmd)

	cmd.AddCommand(probe.NewProbeCmd(runtimeContainer))
	cmd.AddCommand(install.NewInstallCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
