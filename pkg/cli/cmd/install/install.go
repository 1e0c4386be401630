// Package install wires the install command that provisions lab
// infrastructure for the selected delegates.
package install

import (
	"fmt"

	"github.com/smithfarm/handson/pkg/cli/helpers"
	"github.com/smithfarm/handson/pkg/cli/options"
	"github.com/smithfarm/handson/pkg/di"
	installsvc "github.com/smithfarm/handson/pkg/svc/install"
	probesvc "github.com/smithfarm/handson/pkg/svc/probe"
	"github.com/spf13/cobra"
)

// NewInstallCmd wires the install command using the shared runtime container.
func NewInstallCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install [delegate-range]",
		Short: "Provision lab infrastructure for the selected delegates",
		Long: `Provision the VPC and one subnet per selected delegate. ` +
			`Without a range or --all, every delegate is provisioned.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return handleInstallRunE(cmd, args, runtimeContainer)
		},
	}

	options.AddSelectionFlags(cmd)
	options.AddDryRunFlag(cmd)

	return cmd
}

func handleInstallRunE(cmd *cobra.Command, args []string, runtimeContainer *di.Runtime) error {
	selection, err := options.ResolveSelection(cmd, args)
	if err != nil {
		return err
	}

	dryRun, err := cmd.Flags().GetBool(options.DryRunFlagName)
	if err != nil {
		return fmt.Errorf("failed to read --%s flag: %w", options.DryRunFlagName, err)
	}

	manager, err := helpers.NewConfigManagerFromCmd(cmd)
	if err != nil {
		return err
	}

	cluster, _, err := helpers.LoadCluster(runtimeContainer, manager)
	if err != nil {
		return err
	}

	factory, err := di.ResolveProviderFactory(runtimeContainer.Injector)
	if err != nil {
		return err
	}

	provider, err := factory.Create(cmd.Context(), cluster.Spec.Region)
	if err != nil {
		return err
	}

	writer := cmd.OutOrStdout()
	probes := probesvc.NewService(cluster, provider, writer)
	service := installsvc.NewService(cluster, probes, writer)

	changed, err := service.Run(cmd.Context(), installsvc.Options{
		Selection: selection,
		DryRun:    dryRun,
	})
	if err != nil {
		return err
	}

	if !changed {
		return nil
	}

	return manager.SaveConfig()
}
