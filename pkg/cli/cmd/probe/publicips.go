package probe

import (
	"github.com/smithfarm/handson/pkg/cli/options"
	"github.com/smithfarm/handson/pkg/delegate"
	"github.com/smithfarm/handson/pkg/di"
	"github.com/spf13/cobra"
)

// NewPublicIPsCmd wires the probe public-ips command using the shared runtime container.
func NewPublicIPsCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "public-ips [delegate-range]",
		Short:        "List public IPs of the selected delegates",
		Long:         `List the public address of every instance in the selected delegates' subnets.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			return sess.service.PublicIPs(cmd.Context(), selection)
		},
	}

	options.AddSelectionFlags(cmd)

	return cmd
}
