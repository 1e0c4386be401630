package probe

import (
	"fmt"

	"github.com/smithfarm/handson/pkg/cli/helpers"
	"github.com/smithfarm/handson/pkg/di"
	"github.com/spf13/cobra"
)

// NewConfigCmd wires the probe config command using the shared runtime container.
// It never dials AWS; it only validates and echoes the effective description.
func NewConfigCmd(runtimeContainer *di.Runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "config",
		Short:        "Show the effective cluster description",
		Long:         `Load, validate, and print the effective cluster description as YAML.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := helpers.NewConfigManagerFromCmd(cmd)
			if err != nil {
				return err
			}

			cluster, _, err := helpers.LoadCluster(runtimeContainer, manager)
			if err != nil {
				return err
			}

			data, err := cluster.ToYAML()
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			if err != nil {
				return fmt.Errorf("failed to write cluster description: %w", err)
			}

			return nil
		},
	}

	return cmd
}
