package probe

import (
	"fmt"

	"github.com/smithfarm/handson/pkg/cli/options"
	"github.com/smithfarm/handson/pkg/delegate"
	"github.com/smithfarm/handson/pkg/di"
	"github.com/spf13/cobra"
)

// NewSubnetsCmd wires the probe subnets command using the shared runtime container.
func NewSubnetsCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "subnets [delegate-range]",
		Short:        "Probe the per-delegate subnets",
		Long:         `Verify one subnet per selected delegate, optionally creating missing ones.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			create, err := cmd.Flags().GetBool(createFlagName)
			if err != nil {
				return fmt.Errorf("failed to read --%s flag: %w", createFlagName, err)
			}

			selection, err := options.ResolveSelection(cmd, args)
			if err != nil {
				return err
			}

			sess, err := newSession(cmd, runtimeContainer)
			if err != nil {
				return err
			}

			err = delegate.ValidateAgainstCount(selection, sess.cluster.Spec.Delegates)
			if err != nil {
				return err
			}

			changed, err := sess.service.Subnets(cmd.Context(), selection, create)
			if err != nil {
				return err
			}

			return sess.persistIfChanged(changed)
		},
	}

	options.AddSelectionFlags(cmd)
	cmd.Flags().Bool(createFlagName, false, "Create subnets that do not exist")

	return cmd
}
