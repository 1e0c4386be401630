package probe

import (
	"fmt"

	"github.com/smithfarm/handson/pkg/di"
	"github.com/spf13/cobra"
)

// createFlagName lets a probe repair missing resources instead of only
// reporting them.
const createFlagName = "create"

// NewVPCCmd wires the probe vpc command using the shared runtime container.
func NewVPCCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "vpc",
		Short:        "Probe the lab VPC",
		Long:         `Verify the lab VPC exists, optionally creating it when missing.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			create, err := cmd.Flags().GetBool(createFlagName)
			if err != nil {
				return fmt.Errorf("failed to read --%s flag: %w", createFlagName, err)
			}

			sess, err := newSession(cmd, runtimeContainer)
			if err != nil {
				return err
			}

			changed, err := sess.service.VPC(cmd.Context(), create)
			if err != nil {
				return err
			}

			return sess.persistIfChanged(changed)
		},
	}

	cmd.Flags().Bool(createFlagName, false, "Create the VPC when it does not exist")

	return cmd
}
