// Package probe wires the probe subcommands that verify the AWS side of a
// hands-on lab without changing it (unless --create is given).
package probe

import (
	"fmt"

	"github.com/smithfarm/handson/pkg/di"
	"github.com/spf13/cobra"
)

// NewProbeCmd creates the parent probe command and wires the per-resource
// probes beneath it.
func NewProbeCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "probe",
		Short:        "Probe the AWS resources backing the lab",
		Long:         `Probe connectivity, region, VPC, subnets, and delegates of a hands-on lab.`,
		Args:         cobra.NoArgs,
		RunE:         handleProbeRunE,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewAWSCmd(runtimeContainer))
	cmd.AddCommand(NewRegionCmd(runtimeContainer))
	cmd.AddCommand(NewVPCCmd(runtimeContainer))
	cmd.AddCommand(NewSubnetsCmd(runtimeContainer))
	cmd.AddCommand(NewDelegatesCmd(runtimeContainer))
	cmd.AddCommand(NewPublicIPsCmd(runtimeContainer))
	cmd.AddCommand(NewConfigCmd(runtimeContainer))

	return cmd
}

func handleProbeRunE(cmd *cobra.Command, _ []string) error {
	err := cmd.Help()
	if err != nil {
		return fmt.Errorf("displaying probe command help: %w", err)
	}

	return nil
}
