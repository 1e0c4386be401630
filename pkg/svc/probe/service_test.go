package probe_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	v1alpha1 "github.com/smithfarm/handson/pkg/apis/cluster/v1alpha1"
	"github.com/smithfarm/handson/pkg/svc/probe"
	"github.com/smithfarm/handson/pkg/svc/provider/awsec2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider implements probe.Provider in memory.
type fakeProvider struct {
	mu sync.Mutex

	regions   int
	vpcCount  int
	zones     map[string]bool
	vpc       awsec2.VPCInfo
	vpcErr    error
	subnets   map[string]awsec2.SubnetInfo // keyed by CIDR
	created   []string
	instances map[string]int
	ips       map[string][]awsec2.InstanceIP
}

func (f *fakeProvider) ProbeConnection(context.Context) (int, error) {
	return f.regions, nil
}

func (f *fakeProvider) VPCCount(context.Context) (int, error) {
	return f.vpcCount, nil
}

func (f *fakeProvider) AvailabilityZoneExists(_ context.Context, zone string) (bool, error) {
	return f.zones[zone], nil
}

func (f *fakeProvider) EnsureVPC(
	_ context.Context, _ v1alpha1.VPCSpec, _ bool,
) (awsec2.VPCInfo, error) {
	if f.vpcErr != nil {
		return awsec2.VPCInfo{}, f.vpcErr
	}

	return f.vpc, nil
}

func (f *fakeProvider) EnsureSubnet(
	_ context.Context,
	_ string,
	subnet v1alpha1.SubnetSpec,
	_ string,
	create bool,
) (awsec2.SubnetInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if info, ok := f.subnets[subnet.CIDR]; ok {
		return info, nil
	}

	if !create {
		return awsec2.SubnetInfo{}, awsec2.ErrSubnetNotFound
	}

	info := awsec2.SubnetInfo{ID: "subnet-" + subnet.CIDR, CIDR: subnet.CIDR}
	if f.subnets == nil {
		f.subnets = map[string]awsec2.SubnetInfo{}
	}

	f.subnets[subnet.CIDR] = info
	f.created = append(f.created, subnet.CIDR)

	return info, nil
}

func (f *fakeProvider) InstanceCount(_ context.Context, subnetID string) (int, error) {
	return f.instances[subnetID], nil
}

func (f *fakeProvider) PublicIPs(
	_ context.Context, subnetID string,
) ([]awsec2.InstanceIP, error) {
	return f.ips[subnetID], nil
}

func testCluster() *v1alpha1.Cluster {
	cluster := v1alpha1.NewCluster()
	cluster.Spec.Region = "eu-west-1"
	cluster.Spec.Delegates = 2
	cluster.Spec.Subnets = []v1alpha1.SubnetSpec{
		{Delegate: 0, CIDR: "10.0.0.0/24", ID: "subnet-master"},
		{Delegate: 1, CIDR: "10.0.1.0/24", ID: "subnet-one"},
	}

	return cluster
}

func TestConnection_ReportsRegionCount(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	service := probe.NewService(testCluster(), &fakeProvider{regions: 17}, &buf)

	require.NoError(t, service.Connection(t.Context()))
	assert.Contains(t, buf.String(), "17 regions")
}

func TestRegion_ChecksAvailabilityZone(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	cluster := testCluster()
	cluster.Spec.AvailabilityZone = "eu-west-1a"

	service := probe.NewService(
		cluster,
		&fakeProvider{vpcCount: 2, zones: map[string]bool{"eu-west-1a": true}},
		&buf,
	)

	require.NoError(t, service.Region(t.Context()))
	assert.Contains(t, buf.String(), "detected 2 VPCs")
	assert.Contains(t, buf.String(), `availability zone "eu-west-1a" is OK`)
}

func TestRegion_FailsOnUnknownAvailabilityZone(t *testing.T) {
	t.Parallel()

	cluster := testCluster()
	cluster.Spec.AvailabilityZone = "eu-west-9z"

	service := probe.NewService(cluster, &fakeProvider{}, &bytes.Buffer{})

	err := service.Region(t.Context())
	require.ErrorIs(t, err, awsec2.ErrAvailabilityZoneNotFound)
}

func TestVPC_RecordsLearnedID(t *testing.T) {
	t.Parallel()

	cluster := testCluster()
	service := probe.NewService(
		cluster,
		&fakeProvider{vpc: awsec2.VPCInfo{ID: "vpc-9", CIDR: "10.0.0.0/16"}},
		&bytes.Buffer{},
	)

	changed, err := service.VPC(t.Context(), false)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "vpc-9", cluster.Spec.VPC.ID)

	changed, err = service.VPC(t.Context(), false)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestSubnets_CreatesMissingAndRecordsIDs(t *testing.T) {
	t.Parallel()

	cluster := testCluster()
	// Delegate 2 has no subnet entry yet.
	fake := &fakeProvider{
		vpc: awsec2.VPCInfo{ID: "vpc-9", CIDR: "10.0.0.0/16"},
		subnets: map[string]awsec2.SubnetInfo{
			"10.0.0.0/24": {ID: "subnet-master", CIDR: "10.0.0.0/24"},
			"10.0.1.0/24": {ID: "subnet-one", CIDR: "10.0.1.0/24"},
		},
	}
	service := probe.NewService(cluster, fake, &bytes.Buffer{})

	changed, err := service.Subnets(t.Context(), nil, true)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, []string{"10.0.2.0/24"}, fake.created)

	subnet, found := cluster.SubnetFor(2)
	require.True(t, found)
	assert.Equal(t, "subnet-10.0.2.0/24", subnet.ID)
}

func TestSubnets_RecordsManyMissingSubnetsConcurrently(t *testing.T) {
	t.Parallel()

	// No recorded subnets at all: every delegate triggers a create and a
	// concurrent append to Spec.Subnets.
	cluster := v1alpha1.NewCluster()
	cluster.Spec.Region = "eu-west-1"
	cluster.Spec.Delegates = 50

	fake := &fakeProvider{vpc: awsec2.VPCInfo{ID: "vpc-9", CIDR: "10.0.0.0/16"}}
	service := probe.NewService(cluster, fake, &bytes.Buffer{})

	changed, err := service.Subnets(t.Context(), nil, true)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Len(t, cluster.Spec.Subnets, cluster.Spec.Delegates+1)

	for delegateNum := 0; delegateNum <= cluster.Spec.Delegates; delegateNum++ {
		subnet, found := cluster.SubnetFor(delegateNum)
		require.True(t, found)
		assert.Equal(t, "subnet-"+v1alpha1.DefaultSubnetCIDR(delegateNum), subnet.ID)
	}
}

func TestSubnets_MissingSubnetWithoutCreate(t *testing.T) {
	t.Parallel()

	cluster := testCluster()
	fake := &fakeProvider{vpc: awsec2.VPCInfo{ID: "vpc-9"}}
	service := probe.NewService(cluster, fake, &bytes.Buffer{})

	_, err := service.Subnets(t.Context(), nil, false)
	require.ErrorIs(t, err, awsec2.ErrSubnetNotFound)
}

func TestSubnets_HonoursDelegateSelection(t *testing.T) {
	t.Parallel()

	cluster := testCluster()
	fake := &fakeProvider{
		vpc: awsec2.VPCInfo{ID: "vpc-9"},
		subnets: map[string]awsec2.SubnetInfo{
			"10.0.1.0/24": {ID: "subnet-one", CIDR: "10.0.1.0/24"},
		},
	}
	service := probe.NewService(cluster, fake, &bytes.Buffer{})

	_, err := service.Subnets(t.Context(), []int{1}, false)
	require.NoError(t, err)
	assert.Empty(t, fake.created)
}

func TestDelegates_ReportsInstanceCounts(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	service := probe.NewService(
		testCluster(),
		&fakeProvider{instances: map[string]int{"subnet-master": 1, "subnet-one": 4}},
		&buf,
	)

	require.NoError(t, service.Delegates(t.Context(), nil))
	assert.Contains(t, buf.String(), "delegate 0: 1 instances")
	assert.Contains(t, buf.String(), "delegate 1: 4 instances")
	// Delegate 2 has no recorded subnet.
	assert.Contains(t, buf.String(), "delegate 2: no subnet recorded")
}

func TestPublicIPs_PrintsRoleLines(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	service := probe.NewService(
		testCluster(),
		&fakeProvider{ips: map[string][]awsec2.InstanceIP{
			"subnet-one": {{Role: "admin", PublicIP: "203.0.113.7"}},
		}},
		&buf,
	)

	require.NoError(t, service.PublicIPs(t.Context(), []int{1}))
	assert.Equal(t, "Delegate 1, role admin, public IP 203.0.113.7\n", buf.String())
}
