package probe

import (
	"github.com/smithfarm/handson/pkg/di"
	"github.com/spf13/cobra"
)

// NewAWSCmd wires the probe aws command using the shared runtime container.
func NewAWSCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "aws",
		Short:        "Probe connectivity to AWS EC2",
		Long:         `Verify that EC2 is reachable with the ambient AWS credentials.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			sess, err := newSession(cmd, runtimeContainer)
			if err != nil {
				return err
			}

			return sess.service.Connection(cmd.Context())
		},
	}

	return cmd
}
