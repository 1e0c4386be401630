package probe_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	v1alpha1 "github.com/smithfarm/handson/pkg/apis/cluster/v1alpha1"
	probecmd "github.com/smithfarm/handson/pkg/cli/cmd/probe"
	"github.com/smithfarm/handson/pkg/cli/helpers"
	"github.com/smithfarm/handson/pkg/delegate"
	"github.com/smithfarm/handson/pkg/di"
	"github.com/smithfarm/handson/pkg/svc/provider/awsec2"
	probesvc "github.com/smithfarm/handson/pkg/svc/probe"
	"github.com/smithfarm/handson/pkg/ui/timer"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDescription = `apiVersion: handson.dev/v1alpha1
kind: Cluster
spec:
  region: us-east-1
  delegates: 5
  keyName: lab-key
  vpc:
    cidr: 10.0.0.0/16
  subnets:
    - delegate: 0
      cidr: 10.0.0.0/24
      id: subnet-0aaa
    - delegate: 1
      cidr: 10.0.1.0/24
      id: subnet-0bbb
`

// fakeProvider satisfies probesvc.Provider without dialing AWS.
type fakeProvider struct {
	regions int
	vpcs    int
}

func (f *fakeProvider) ProbeConnection(context.Context) (int, error) {
	return f.regions, nil
}

func (f *fakeProvider) VPCCount(context.Context) (int, error) {
	return f.vpcs, nil
}

func (f *fakeProvider) AvailabilityZoneExists(context.Context, string) (bool, error) {
	return true, nil
}

func (f *fakeProvider) EnsureVPC(
	_ context.Context,
	spec v1alpha1.VPCSpec,
	_ bool,
) (awsec2.VPCInfo, error) {
	return awsec2.VPCInfo{ID: "vpc-0feed", CIDR: spec.CIDR}, nil
}

func (f *fakeProvider) EnsureSubnet(
	_ context.Context,
	_ string,
	subnet v1alpha1.SubnetSpec,
	_ string,
	_ bool,
) (awsec2.SubnetInfo, error) {
	return awsec2.SubnetInfo{ID: "subnet-0fee", CIDR: subnet.CIDR}, nil
}

func (f *fakeProvider) InstanceCount(context.Context, string) (int, error) {
	return 2, nil
}

func (f *fakeProvider) PublicIPs(context.Context, string) ([]awsec2.InstanceIP, error) {
	return []awsec2.InstanceIP{{Role: "master", PublicIP: "198.51.100.7"}}, nil
}

type fakeFactory struct {
	provider probesvc.Provider
}

//nolint:ireturn // fakes return the interface the factory contract names
func (f fakeFactory) Create(context.Context, string) (probesvc.Provider, error) {
	return f.provider, nil
}

func newTestRuntime(provider probesvc.Provider) *di.Runtime {
	return di.New(func(injector di.Injector) error {
		do.Provide(injector, func(di.Injector) (timer.Timer, error) {
			return timer.New(), nil
		})
		do.Provide(injector, func(di.Injector) (probesvc.Factory, error) {
			return fakeFactory{provider: provider}, nil
		})

		return nil
	})
}

func writeDescription(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ho.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDescription), 0o600))

	return path
}

func runProbe(t *testing.T, provider probesvc.Provider, args ...string) (string, error) {
	t.Helper()

	cmd := probecmd.NewProbeCmd(newTestRuntime(provider))
	helpers.RegisterConfigFlag(cmd)

	var out bytes.Buffer

	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestNewProbeCmd_ShowsHelp(t *testing.T) {
	t.Parallel()

	out, err := runProbe(t, &fakeProvider{})
	require.NoError(t, err)

	assert.Contains(t, out, "aws")
	assert.Contains(t, out, "subnets")
	assert.Contains(t, out, "public-ips")
}

func TestProbeAWS_ReportsConnection(t *testing.T) {
	t.Parallel()

	out, err := runProbe(
		t,
		&fakeProvider{regions: 3},
		"aws", "--config", writeDescription(t),
	)
	require.NoError(t, err)

	assert.Contains(t, out, "connected to AWS EC2 (3 regions visible)")
}

func TestProbeRegion_ReportsVPCCount(t *testing.T) {
	t.Parallel()

	out, err := runProbe(
		t,
		&fakeProvider{vpcs: 2},
		"region", "--config", writeDescription(t),
	)
	require.NoError(t, err)

	assert.Contains(t, out, "us-east-1")
	assert.Contains(t, out, "detected 2 VPCs")
}

func TestProbeVPC_PersistsLearnedID(t *testing.T) {
	t.Parallel()

	path := writeDescription(t)

	out, err := runProbe(t, &fakeProvider{}, "vpc", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "vpc-0feed")

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "vpc-0feed")
}

func TestProbeSubnets_RejectsSelectionBeyondCount(t *testing.T) {
	t.Parallel()

	_, err := runProbe(
		t,
		&fakeProvider{},
		"subnets", "1-10", "--config", writeDescription(t),
	)
	require.ErrorIs(t, err, delegate.ErrRangeExceedsCount)
}

func TestProbeDelegates_ReportsInstanceCounts(t *testing.T) {
	t.Parallel()

	out, err := runProbe(
		t,
		&fakeProvider{},
		"delegates", "1", "--config", writeDescription(t),
	)
	require.NoError(t, err)

	assert.Contains(t, out, "delegate 1: 2 instances")
}

func TestProbePublicIPs_ListsAddresses(t *testing.T) {
	t.Parallel()

	out, err := runProbe(
		t,
		&fakeProvider{},
		"public-ips", "1", "--config", writeDescription(t),
	)
	require.NoError(t, err)

	assert.Contains(t, out, "Delegate 1, role master, public IP 198.51.100.7")
}

func TestProbeConfig_PrintsEffectiveDescription(t *testing.T) {
	t.Parallel()

	out, err := runProbe(
		t,
		&fakeProvider{},
		"config", "--config", writeDescription(t),
	)
	require.NoError(t, err)

	assert.Contains(t, out, "region: us-east-1")
	assert.Contains(t, out, "delegates: 5")
}
