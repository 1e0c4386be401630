package probe

import (
	v1alpha1 "github.com/smithfarm/handson/pkg/apis/cluster/v1alpha1"
	"github.com/smithfarm/handson/pkg/cli/helpers"
	"github.com/smithfarm/handson/pkg/di"
	"github.com/smithfarm/handson/pkg/io/configmanager"
	probesvc "github.com/smithfarm/handson/pkg/svc/probe"
	"github.com/spf13/cobra"
)

// session bundles the loaded cluster description with a probe service bound
// to the configured region. Every probe subcommand starts by opening one.
type session struct {
	manager *configmanager.ConfigManager
	cluster *v1alpha1.Cluster
	service *probesvc.Service
}

func newSession(cmd *cobra.Command, runtimeContainer *di.Runtime) (*session, error) {
	manager, err := helpers.NewConfigManagerFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	cluster, _, err := helpers.LoadCluster(runtimeContainer, manager)
	if err != nil {
		return nil, err
	}

	factory, err := di.ResolveProviderFactory(runtimeContainer.Injector)
	if err != nil {
		return nil, err
	}

	provider, err := factory.Create(cmd.Context(), cluster.Spec.Region)
	if err != nil {
		return nil, err
	}

	return &session{
		manager: manager,
		cluster: cluster,
		service: probesvc.NewService(cluster, provider, cmd.OutOrStdout()),
	}, nil
}

// persistIfChanged writes learned resource IDs back to the description file.
func (s *session) persistIfChanged(changed bool) error {
	if !changed {
		return nil
	}

	return s.manager.SaveConfig()
}
