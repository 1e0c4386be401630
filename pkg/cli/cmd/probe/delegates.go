package probe

import (
	"github.com/smithfarm/handson/pkg/cli/options"
	"github.com/smithfarm/handson/pkg/delegate"
	"github.com/smithfarm/handson/pkg/di"
	"github.com/spf13/cobra"
)

// NewDelegatesCmd wires the probe delegates command using the shared runtime container.
func NewDelegatesCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "delegates [delegate-range]",
		Short:        "Probe the instances of each selected delegate",
		Long:         `Report how many instances run in each selected delegate's subnet.`,
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

			return sess.service.Delegates(cmd.Context(), selection)
		},
	}

	options.AddSelectionFlags(cmd)

	return cmd
}
