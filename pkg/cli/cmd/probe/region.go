package probe

import (
	"github.com/smithfarm/handson/pkg/di"
	"github.com/spf13/cobra"
)

// NewRegionCmd wires the probe region command using the shared runtime container.
func NewRegionCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "region",
		Short:        "Probe the configured AWS region",
		Long:         `Verify connectivity to the configured region and its availability zone.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd, runtimeContainer)
			if err != nil {
				return err
			}

			return sess.service.Region(cmd.Context())
		},
	}

	return cmd
}
