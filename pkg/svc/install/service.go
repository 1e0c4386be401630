package install

import (
	"context"
	"io"

	v1alpha1 "github.com/smithfarm/handson/pkg/apis/cluster/v1alpha1"
	"github.com/smithfarm/handson/pkg/delegate"
	"github.com/smithfarm/handson/pkg/svc/probe"
	"github.com/smithfarm/handson/pkg/ui/notify"
)

// Options scope an install run.
type Options struct {
	// Selection is the parsed delegate selection; nil means every delegate.
	Selection []int
	// DryRun goes through the motions without touching AWS.
	DryRun bool
}

// Service installs lab infrastructure for selected delegates.
type Service struct {
	cluster *v1alpha1.Cluster
	probes  *probe.Service
	writer  io.Writer
}

// NewService creates an install service reusing the probe service for the
// ensure-style provisioning steps.
func NewService(cluster *v1alpha1.Cluster, probes *probe.Service, writer io.Writer) *Service {
	return &Service{
		cluster: cluster,
		probes:  probes,
		writer:  writer,
	}
}

// Run validates the delegate selection against the cluster description and
// provisions the VPC and subnets for the selected delegates. It reports
// whether the description changed (so the caller can persist learned IDs).
func (s *Service) Run(ctx context.Context, opts Options) (bool, error) {
	s.reportOptions(opts)

	err := delegate.ValidateAgainstCount(opts.Selection, s.cluster.Spec.Delegates)
	if err != nil {
		return false, err
	}

	if opts.DryRun {
		notify.Successf(s.writer, "dry run complete, nothing changed")

		return false, nil
	}

	changed, err := s.probes.Subnets(ctx, opts.Selection, true)
	if err != nil {
		return false, err
	}

	notify.Successf(s.writer, "install complete")

	return changed, nil
}

func (s *Service) reportOptions(opts Options) {
	dryRun := "OFF"
	if opts.DryRun {
		dryRun = "ON"
	}

	notify.Infof(s.writer, "dry run is %s", dryRun)

	if opts.Selection == nil {
		notify.Infof(s.writer, "delegate selection: all")
	} else {
		notify.Infof(s.writer, "delegate selection: %v", opts.Selection)
	}
}
