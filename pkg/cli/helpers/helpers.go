// Package helpers provides small shared utilities for wiring commands to the
// cluster description and the runtime container.
package helpers

import (
	"fmt"

	v1alpha1 "github.com/smithfarm/handson/pkg/apis/cluster/v1alpha1"
	"github.com/smithfarm/handson/pkg/di"
	"github.com/smithfarm/handson/pkg/io/configmanager"
	"github.com/smithfarm/handson/pkg/ui/timer"
	"github.com/spf13/cobra"
)

// ConfigFlagName is the persistent flag selecting the cluster description file.
const ConfigFlagName = "config"

// RegisterConfigFlag adds the --config persistent flag to the root command.
func RegisterConfigFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP(
		ConfigFlagName,
		"c",
		"",
		"Path to the cluster description file (default: ho.yaml in the working directory)",
	)
}

// NewConfigManagerFromCmd builds a config manager honoring the --config flag
// and writing notifications to the command's output stream.
func NewConfigManagerFromCmd(cmd *cobra.Command) (*configmanager.ConfigManager, error) {
	configFile, err := cmd.Flags().GetString(ConfigFlagName)
	if err != nil {
		return nil, fmt.Errorf("failed to read --%s flag: %w", ConfigFlagName, err)
	}

	return configmanager.NewConfigManager(cmd.OutOrStdout(), configFile), nil
}

// LoadCluster resolves the timer from the runtime container, starts it, and
// loads the cluster description through the given manager.
func LoadCluster(
	runtimeContainer *di.Runtime,
	manager *configmanager.ConfigManager,
) (*v1alpha1.Cluster, timer.Timer, error) {
	tmr, err := di.ResolveTimer(runtimeContainer.Injector)
	if err != nil {
		return nil, nil, err
	}

	tmr.Start()

	cluster, err := manager.LoadConfig(tmr)
	if err != nil {
		return nil, nil, err
	}

	return cluster, tmr, nil
}
