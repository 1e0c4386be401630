package v1alpha1_test

import (
	"testing"

	v1alpha1 "github.com/smithfarm/handson/pkg/apis/cluster/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCluster() *v1alpha1.Cluster {
	cluster := v1alpha1.NewCluster()
	cluster.Spec.Region = "eu-west-1"
	cluster.Spec.Delegates = 3
	cluster.Spec.Subnets = []v1alpha1.SubnetSpec{
		{Delegate: 0, CIDR: "10.0.0.0/24"},
		{Delegate: 1, CIDR: "10.0.1.0/24"},
	}

	return cluster
}

func TestValidate_AcceptsWellFormedDescription(t *testing.T) {
	t.Parallel()

	require.NoError(t, validCluster().Validate())
}

func TestValidate_RejectsMissingRegion(t *testing.T) {
	t.Parallel()

	cluster := validCluster()
	cluster.Spec.Region = ""

	require.ErrorIs(t, cluster.Validate(), v1alpha1.ErrRegionMissing)
}

func TestValidate_RejectsDelegateCountOutsideRange(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		count int
	}{
		{"zero", 0},
		{"negative", -5},
		{"above maximum", 51},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cluster := validCluster()
			cluster.Spec.Delegates = testCase.count

			err := cluster.Validate()
			require.ErrorIs(t, err, v1alpha1.ErrDelegateCountInvalid)
		})
	}
}

func TestValidate_RejectsBadCIDRs(t *testing.T) {
	t.Parallel()

	cluster := validCluster()
	cluster.Spec.VPC.CIDR = "10.0.0.0/99"

	require.ErrorIs(t, cluster.Validate(), v1alpha1.ErrCIDRInvalid)

	cluster = validCluster()
	cluster.Spec.Subnets[1].CIDR = "not-a-cidr"

	require.ErrorIs(t, cluster.Validate(), v1alpha1.ErrCIDRInvalid)
}

func TestValidate_RejectsSubnetForUnknownDelegate(t *testing.T) {
	t.Parallel()

	cluster := validCluster()
	cluster.Spec.Subnets = append(cluster.Spec.Subnets, v1alpha1.SubnetSpec{
		Delegate: 7,
		CIDR:     "10.0.7.0/24",
	})

	err := cluster.Validate()
	require.ErrorIs(t, err, v1alpha1.ErrSubnetDelegateInvalid)
	assert.Contains(t, err.Error(), "7")
}

func TestValidate_RejectsDuplicateSubnets(t *testing.T) {
	t.Parallel()

	cluster := validCluster()
	cluster.Spec.Subnets = append(cluster.Spec.Subnets, v1alpha1.SubnetSpec{
		Delegate: 1,
		CIDR:     "10.0.9.0/24",
	})

	require.ErrorIs(t, cluster.Validate(), v1alpha1.ErrSubnetDuplicate)
}

func TestSubnetFor_FindsConfiguredSubnet(t *testing.T) {
	t.Parallel()

	cluster := validCluster()

	subnet, found := cluster.SubnetFor(1)
	require.True(t, found)
	assert.Equal(t, "10.0.1.0/24", subnet.CIDR)

	_, found = cluster.SubnetFor(3)
	assert.False(t, found)
}

func TestDefaultSubnetCIDR_FollowsDelegateNumber(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "10.0.0.0/24", v1alpha1.DefaultSubnetCIDR(0))
	assert.Equal(t, "10.0.12.0/24", v1alpha1.DefaultSubnetCIDR(12))
}

func TestNewCluster_SetsAPIMetadataAndDefaults(t *testing.T) {
	t.Parallel()

	cluster := v1alpha1.NewCluster()

	assert.Equal(t, v1alpha1.Kind, cluster.Kind)
	assert.Equal(t, v1alpha1.APIVersion, cluster.APIVersion)
	assert.Equal(t, v1alpha1.DefaultRegion, cluster.Spec.Region)
	assert.Equal(t, v1alpha1.DefaultVPCCIDR, cluster.Spec.VPC.CIDR)
}
