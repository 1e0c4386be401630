package awsec2

import (
	"context"
	"fmt"

	v1alpha1 "github.com/smithfarm/handson/pkg/apis/cluster/v1alpha1"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// Provider performs lab cluster operations against AWS EC2.
type Provider struct {
	client API
}

// VPCInfo describes a VPC found or created in AWS.
type VPCInfo struct {
	ID   string
	CIDR string
}

// SubnetInfo describes a subnet found or created in AWS.
type SubnetInfo struct {
	ID               string
	CIDR             string
	AvailabilityZone string
}

// InstanceIP is one instance's public address together with its lab role.
type InstanceIP struct {
	Role     string
	PublicIP string
}

// NewProvider creates a provider with the given EC2 client.
func NewProvider(client API) *Provider {
	return &Provider{client: client}
}

// NewProviderForRegion creates a provider connected to the given region using
// the ambient AWS credential chain.
func NewProviderForRegion(ctx context.Context, region string) (*Provider, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Provider{client: ec2.NewFromConfig(cfg)}, nil
}

// ProbeConnection verifies EC2 connectivity and returns the number of regions
// visible to the caller's credentials.
func (p *Provider) ProbeConnection(ctx context.Context) (int, error) {
	if p.client == nil {
		return 0, ErrProviderUnavailable
	}

	out, err := p.client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return 0, fmt.Errorf("failed to describe regions: %w", err)
	}

	return len(out.Regions), nil
}

// VPCCount returns the number of VPCs visible in the connected region.
func (p *Provider) VPCCount(ctx context.Context) (int, error) {
	if p.client == nil {
		return 0, ErrProviderUnavailable
	}

	out, err := p.client.DescribeVpcs(ctx, &ec2.DescribeVpcsInput{})
	if err != nil {
		return 0, fmt.Errorf("failed to describe VPCs: %w", err)
	}

	return len(out.Vpcs), nil
}

// AvailabilityZoneExists reports whether the named availability zone exists in
// the connected region.
func (p *Provider) AvailabilityZoneExists(ctx context.Context, zone string) (bool, error) {
	if p.client == nil {
		return false, ErrProviderUnavailable
	}

	out, err := p.client.DescribeAvailabilityZones(ctx, &ec2.DescribeAvailabilityZonesInput{
		ZoneNames: []string{zone},
	})
	if err != nil {
		return false, fmt.Errorf("failed to describe availability zone %s: %w", zone, err)
	}

	return len(out.AvailabilityZones) > 0, nil
}

// EnsureVPC finds the VPC described by the cluster description, preferring the
// recorded ID over a CIDR lookup. With create set, a missing VPC is created
// and tagged; without it, ErrVPCNotFound is returned.
func (p *Provider) EnsureVPC(
	ctx context.Context,
	spec v1alpha1.VPCSpec,
	create bool,
) (VPCInfo, error) {
	if p.client == nil {
		return VPCInfo{}, ErrProviderUnavailable
	}

	found, err := p.findVPC(ctx, spec)
	if err != nil {
		return VPCInfo{}, err
	}

	if found != nil {
		return *found, nil
	}

	if !create {
		return VPCInfo{}, fmt.Errorf("%w: %s", ErrVPCNotFound, spec.CIDR)
	}

	out, err := p.client.CreateVpc(ctx, &ec2.CreateVpcInput{
		CidrBlock:         aws.String(spec.CIDR),
		TagSpecifications: ownedTags(types.ResourceTypeVpc),
	})
	if err != nil {
		return VPCInfo{}, fmt.Errorf("failed to create VPC %s: %w", spec.CIDR, err)
	}

	return VPCInfo{
		ID:   aws.ToString(out.Vpc.VpcId),
		CIDR: aws.ToString(out.Vpc.CidrBlock),
	}, nil
}

// findVPC looks up the VPC by recorded ID, falling back to its CIDR block.
// A nil result with nil error means the VPC does not exist.
func (p *Provider) findVPC(ctx context.Context, spec v1alpha1.VPCSpec) (*VPCInfo, error) {
	input := &ec2.DescribeVpcsInput{}
	if spec.ID != "" {
		input.VpcIds = []string{spec.ID}
	} else {
		input.Filters = []types.Filter{
			{Name: aws.String("cidr"), Values: []string{spec.CIDR}},
		}
	}

	out, err := p.client.DescribeVpcs(ctx, input)
	if err != nil {
		if spec.ID != "" {
			// A stale recorded ID comes back as an API error; fall back to
			// the CIDR lookup before giving up.
			return p.findVPC(ctx, v1alpha1.VPCSpec{CIDR: spec.CIDR})
		}

		return nil, fmt.Errorf("failed to describe VPCs: %w", err)
	}

	if len(out.Vpcs) == 0 {
		return nil, nil
	}

	vpc := out.Vpcs[0]

	return &VPCInfo{
		ID:   aws.ToString(vpc.VpcId),
		CIDR: aws.ToString(vpc.CidrBlock),
	}, nil
}

// EnsureSubnet finds a delegate's subnet inside the given VPC, creating it
// when create is set. A missing subnet without create returns
// ErrSubnetNotFound.
func (p *Provider) EnsureSubnet(
	ctx context.Context,
	vpcID string,
	subnet v1alpha1.SubnetSpec,
	availabilityZone string,
	create bool,
) (SubnetInfo, error) {
	if p.client == nil {
		return SubnetInfo{}, ErrProviderUnavailable
	}

	out, err := p.client.DescribeSubnets(ctx, &ec2.DescribeSubnetsInput{
		Filters: []types.Filter{
			{Name: aws.String("vpc-id"), Values: []string{vpcID}},
			{Name: aws.String("cidr-block"), Values: []string{subnet.CIDR}},
		},
	})
	if err != nil {
		return SubnetInfo{}, fmt.Errorf(
			"failed to describe subnet for delegate %d: %w", subnet.Delegate, err,
		)
	}

	if len(out.Subnets) > 0 {
		found := out.Subnets[0]

		return SubnetInfo{
			ID:               aws.ToString(found.SubnetId),
			CIDR:             aws.ToString(found.CidrBlock),
			AvailabilityZone: aws.ToString(found.AvailabilityZone),
		}, nil
	}

	if !create {
		return SubnetInfo{}, fmt.Errorf(
			"%w: delegate %d (%s)", ErrSubnetNotFound, subnet.Delegate, subnet.CIDR,
		)
	}

	input := &ec2.CreateSubnetInput{
		VpcId:     aws.String(vpcID),
		CidrBlock: aws.String(subnet.CIDR),
		TagSpecifications: ownedTags(
			types.ResourceTypeSubnet,
			delegateTag(subnet.Delegate),
		),
	}
	if availabilityZone != "" {
		input.AvailabilityZone = aws.String(availabilityZone)
	}

	created, err := p.client.CreateSubnet(ctx, input)
	if err != nil {
		return SubnetInfo{}, fmt.Errorf(
			"failed to create subnet for delegate %d: %w", subnet.Delegate, err,
		)
	}

	return SubnetInfo{
		ID:               aws.ToString(created.Subnet.SubnetId),
		CIDR:             aws.ToString(created.Subnet.CidrBlock),
		AvailabilityZone: aws.ToString(created.Subnet.AvailabilityZone),
	}, nil
}

// InstanceCount returns the number of running instances in a subnet.
func (p *Provider) InstanceCount(ctx context.Context, subnetID string) (int, error) {
	instances, err := p.runningInstances(ctx, subnetID)
	if err != nil {
		return 0, err
	}

	return len(instances), nil
}

// PublicIPs returns the public addresses of the running instances in a
// subnet, together with each instance's lab role. Instances without a public
// address are skipped.
func (p *Provider) PublicIPs(ctx context.Context, subnetID string) ([]InstanceIP, error) {
	instances, err := p.runningInstances(ctx, subnetID)
	if err != nil {
		return nil, err
	}

	var ips []InstanceIP

	for _, instance := range instances {
		address := aws.ToString(instance.PublicIpAddress)
		if address == "" {
			continue
		}

		role, _ := tagValue(instance.Tags, TagRole)
		ips = append(ips, InstanceIP{Role: role, PublicIP: address})
	}

	return ips, nil
}

func (p *Provider) runningInstances(
	ctx context.Context,
	subnetID string,
) ([]types.Instance, error) {
	if p.client == nil {
		return nil, ErrProviderUnavailable
	}

	out, err := p.client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{
		Filters: []types.Filter{
			{Name: aws.String("subnet-id"), Values: []string{subnetID}},
			{
				Name: aws.String("instance-state-name"),
				Values: []string{
					string(types.InstanceStateNameRunning),
					string(types.InstanceStateNamePending),
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe instances in %s: %w", subnetID, err)
	}

	var instances []types.Instance
	for _, reservation := range out.Reservations {
		instances = append(instances, reservation.Instances...)
	}

	return instances, nil
}
