package v1alpha1_test

import (
	"testing"

	v1alpha1 "github.com/smithfarm/handson/pkg/apis/cluster/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDescription = `apiVersion: handson.dev/v1alpha1
kind: Cluster
spec:
  region: ap-southeast-2
  availabilityZone: ap-southeast-2a
  delegates: 4
  keyName: lab-key
  vpc:
    cidr: 10.0.0.0/16
  subnets:
    - delegate: 0
      cidr: 10.0.0.0/24
      id: subnet-0aaa
    - delegate: 1
      cidr: 10.0.1.0/24
`

func TestFromYAML_ParsesFullDescription(t *testing.T) {
	t.Parallel()

	cluster, err := v1alpha1.FromYAML([]byte(sampleDescription))
	require.NoError(t, err)

	assert.Equal(t, "ap-southeast-2", cluster.Spec.Region)
	assert.Equal(t, "ap-southeast-2a", cluster.Spec.AvailabilityZone)
	assert.Equal(t, 4, cluster.Spec.Delegates)
	assert.Equal(t, "lab-key", cluster.Spec.KeyName)
	assert.Equal(t, "10.0.0.0/16", cluster.Spec.VPC.CIDR)
	require.Len(t, cluster.Spec.Subnets, 2)
	assert.Equal(t, "subnet-0aaa", cluster.Spec.Subnets[0].ID)
	require.NoError(t, cluster.Validate())
}

func TestFromYAML_RejectsUnknownFields(t *testing.T) {
	t.Parallel()

	_, err := v1alpha1.FromYAML([]byte("spec:\n  regoin: eu-west-1\n"))
	require.Error(t, err)
}

func TestToYAML_RoundTripsThroughFromYAML(t *testing.T) {
	t.Parallel()

	original, err := v1alpha1.FromYAML([]byte(sampleDescription))
	require.NoError(t, err)

	data, err := original.ToYAML()
	require.NoError(t, err)

	reparsed, err := v1alpha1.FromYAML(data)
	require.NoError(t, err)
	assert.Equal(t, original, reparsed)
}
