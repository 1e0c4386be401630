package probe

import (
	"context"
	"fmt"
	"io"
	"sync"

	v1alpha1 "github.com/smithfarm/handson/pkg/apis/cluster/v1alpha1"
	"github.com/smithfarm/handson/pkg/svc/provider/awsec2"
	"github.com/smithfarm/handson/pkg/ui/notify"

	"golang.org/x/sync/errgroup"
)

// subnetProbeConcurrency bounds the fan-out of per-delegate subnet checks.
const subnetProbeConcurrency = 4

// Provider is the slice of the EC2 provider the probe service depends on.
type Provider interface {
	ProbeConnection(ctx context.Context) (int, error)
	VPCCount(ctx context.Context) (int, error)
	AvailabilityZoneExists(ctx context.Context, zone string) (bool, error)
	EnsureVPC(ctx context.Context, spec v1alpha1.VPCSpec, create bool) (awsec2.VPCInfo, error)
	EnsureSubnet(
		ctx context.Context,
		vpcID string,
		subnet v1alpha1.SubnetSpec,
		availabilityZone string,
		create bool,
	) (awsec2.SubnetInfo, error)
	InstanceCount(ctx context.Context, subnetID string) (int, error)
	PublicIPs(ctx context.Context, subnetID string) ([]awsec2.InstanceIP, error)
}

// Service runs probes for one lab cluster.
type Service struct {
	cluster  *v1alpha1.Cluster
	provider Provider
	writer   io.Writer
}

// NewService creates a probe service for the given cluster description.
func NewService(cluster *v1alpha1.Cluster, provider Provider, writer io.Writer) *Service {
	return &Service{
		cluster:  cluster,
		provider: provider,
		writer:   writer,
	}
}

// Connection tests the ability to talk to EC2 at all.
func (s *Service) Connection(ctx context.Context) error {
	regions, err := s.provider.ProbeConnection(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to AWS EC2: %w", err)
	}

	notify.Successf(s.writer, "connected to AWS EC2 (%d regions visible)", regions)

	return nil
}

// Region tests connectivity to the configured region and, when one is set,
// the existence of the configured availability zone.
func (s *Service) Region(ctx context.Context) error {
	notify.Activityf(
		s.writer,
		"testing connectivity to AWS region %q",
		s.cluster.Spec.Region,
	)

	vpcCount, err := s.provider.VPCCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to probe region %s: %w", s.cluster.Spec.Region, err)
	}

	notify.Infof(s.writer, "detected %d VPCs", vpcCount)

	zone := s.cluster.Spec.AvailabilityZone
	if zone == "" {
		notify.Infof(s.writer, "availability zone not set in cluster description")

		return nil
	}

	exists, err := s.provider.AvailabilityZoneExists(ctx, zone)
	if err != nil {
		return fmt.Errorf("failed to probe availability zone %s: %w", zone, err)
	}

	if !exists {
		return fmt.Errorf("%w: %s", awsec2.ErrAvailabilityZoneNotFound, zone)
	}

	notify.Successf(s.writer, "availability zone %q is OK", zone)

	return nil
}

// VPC checks the VPC described by the cluster description, creating it when
// create is set. It records a freshly learned VPC ID in the description and
// reports whether the description changed.
func (s *Service) VPC(ctx context.Context, create bool) (bool, error) {
	info, err := s.provider.EnsureVPC(ctx, s.cluster.Spec.VPC, create)
	if err != nil {
		return false, err
	}

	changed := s.cluster.Spec.VPC.ID != info.ID
	s.cluster.Spec.VPC.ID = info.ID

	notify.Successf(s.writer, "VPC %s (%s) is OK", info.ID, info.CIDR)

	return changed, nil
}

// Subnets checks one subnet per selected delegate (the Salt Master subnet,
// delegate 0, is always included in a full probe), creating missing subnets
// when create is set. Freshly learned subnet IDs are recorded in the
// description; the return value reports whether the description changed.
func (s *Service) Subnets(ctx context.Context, selection []int, create bool) (bool, error) {
	vpcChanged, err := s.VPC(ctx, create)
	if err != nil {
		return false, err
	}

	delegates := s.targets(selection)
	notify.Activityf(s.writer, "probing %d subnets", len(delegates))

	// Snapshot the per-delegate specs before fanning out: recordSubnet appends
	// to Spec.Subnets, so the goroutines must not read the slice themselves.
	specs := make(map[int]v1alpha1.SubnetSpec, len(delegates))

	for _, delegateNum := range delegates {
		spec, _ := s.cluster.SubnetFor(delegateNum)
		if spec.CIDR == "" {
			spec = v1alpha1.SubnetSpec{
				Delegate: delegateNum,
				CIDR:     v1alpha1.DefaultSubnetCIDR(delegateNum),
			}
		}

		specs[delegateNum] = spec
	}

	var (
		mu      sync.Mutex
		changed bool
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(subnetProbeConcurrency)

	for _, delegateNum := range delegates {
		group.Go(func() error {
			spec := specs[delegateNum]

			info, err := s.provider.EnsureSubnet(
				groupCtx,
				s.cluster.Spec.VPC.ID,
				spec,
				s.cluster.Spec.AvailabilityZone,
				create,
			)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()

			if s.recordSubnet(delegateNum, spec.CIDR, info.ID) {
				changed = true
			}

			notify.Infof(s.writer, "delegate %d: subnet %s (%s)", delegateNum, info.ID, info.CIDR)

			return nil
		})
	}

	err = group.Wait()
	if err != nil {
		return false, err
	}

	notify.Successf(s.writer, "all %d subnets are OK", len(delegates))

	return changed || vpcChanged, nil
}

// Delegates reports the number of running instances in each selected
// delegate's subnet.
func (s *Service) Delegates(ctx context.Context, selection []int) error {
	for _, delegateNum := range s.targets(selection) {
		spec, found := s.cluster.SubnetFor(delegateNum)
		if !found || spec.ID == "" {
			notify.Warningf(s.writer, "delegate %d: no subnet recorded", delegateNum)

			continue
		}

		count, err := s.provider.InstanceCount(ctx, spec.ID)
		if err != nil {
			return err
		}

		notify.Infof(s.writer, "delegate %d: %d instances", delegateNum, count)
	}

	return nil
}

// PublicIPs lists the public addresses of the instances in each selected
// delegate's subnet, one line per role-bearing instance.
func (s *Service) PublicIPs(ctx context.Context, selection []int) error {
	for _, delegateNum := range s.targets(selection) {
		spec, found := s.cluster.SubnetFor(delegateNum)
		if !found || spec.ID == "" {
			continue
		}

		ips, err := s.provider.PublicIPs(ctx, spec.ID)
		if err != nil {
			return err
		}

		for _, ip := range ips {
			fmt.Fprintf(
				s.writer,
				"Delegate %d, role %s, public IP %s\n",
				delegateNum, ip.Role, ip.PublicIP,
			)
		}
	}

	return nil
}

// targets resolves a delegate selection: nil means every delegate the cluster
// configures, Salt Master subnet included.
func (s *Service) targets(selection []int) []int {
	if selection != nil {
		return selection
	}

	all := make([]int, 0, s.cluster.Spec.Delegates+1)
	for delegateNum := v1alpha1.MasterDelegate; delegateNum <= s.cluster.Spec.Delegates; delegateNum++ {
		all = append(all, delegateNum)
	}

	return all
}

// recordSubnet stores a learned subnet ID in the description. Reports whether
// anything changed.
func (s *Service) recordSubnet(delegateNum int, cidr, id string) bool {
	for i := range s.cluster.Spec.Subnets {
		if s.cluster.Spec.Subnets[i].Delegate == delegateNum {
			if s.cluster.Spec.Subnets[i].ID == id {
				return false
			}

			s.cluster.Spec.Subnets[i].ID = id

			return true
		}
	}

	s.cluster.Spec.Subnets = append(s.cluster.Spec.Subnets, v1alpha1.SubnetSpec{
		Delegate: delegateNum,
		CIDR:     cidr,
		ID:       id,
	})

	return true
}
