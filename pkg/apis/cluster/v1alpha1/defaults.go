package v1alpha1

import "fmt"

const (
	// DefaultRegion is the AWS region used when the description file sets none.
	DefaultRegion = "eu-west-1"
	// DefaultDelegateCount is the number of delegates configured by default.
	DefaultDelegateCount = 1
	// DefaultVPCCIDR is the address block of the lab VPC.
	DefaultVPCCIDR = "10.0.0.0/16"
	// MasterDelegate is the pseudo-delegate number of the Salt Master subnet.
	MasterDelegate = 0
)

// DefaultSubnetCIDR returns the address block assigned to a delegate's subnet
// inside the default VPC CIDR. Delegate 0 (the Salt Master) gets 10.0.0.0/24,
// delegate n gets 10.0.n.0/24.
func DefaultSubnetCIDR(delegate int) string {
	return fmt.Sprintf("10.0.%d.0/24", delegate)
}
