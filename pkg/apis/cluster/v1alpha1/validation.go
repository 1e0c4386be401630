package v1alpha1

import (
	"fmt"
	"net"
)

// DelegateCountMax is the highest delegate count a cluster may configure. It
// matches the addressable delegate range and the /24-per-delegate CIDR scheme.
const DelegateCountMax = 50

// Validate checks a cluster description for internal consistency. It returns
// the first problem found, or nil if the description is usable.
func (c *Cluster) Validate() error {
	if c.Spec.Region == "" {
		return ErrRegionMissing
	}

	if c.Spec.Delegates < 1 || c.Spec.Delegates > DelegateCountMax {
		return fmt.Errorf(
			"%w: %d (must be between 1 and %d)",
			ErrDelegateCountInvalid, c.Spec.Delegates, DelegateCountMax,
		)
	}

	if err := validateCIDR("vpc", c.Spec.VPC.CIDR); err != nil {
		return err
	}

	return c.validateSubnets()
}

// validateSubnets checks each subnet entry against the configured delegate
// count and rejects duplicates.
func (c *Cluster) validateSubnets() error {
	seen := make(map[int]struct{}, len(c.Spec.Subnets))

	for _, subnet := range c.Spec.Subnets {
		if subnet.Delegate < MasterDelegate || subnet.Delegate > c.Spec.Delegates {
			return fmt.Errorf(
				"%w: delegate %d (cluster configures %d delegates)",
				ErrSubnetDelegateInvalid, subnet.Delegate, c.Spec.Delegates,
			)
		}

		if _, duplicate := seen[subnet.Delegate]; duplicate {
			return fmt.Errorf("%w: delegate %d", ErrSubnetDuplicate, subnet.Delegate)
		}

		seen[subnet.Delegate] = struct{}{}

		name := fmt.Sprintf("subnet for delegate %d", subnet.Delegate)
		if err := validateCIDR(name, subnet.CIDR); err != nil {
			return err
		}
	}

	return nil
}

// SubnetFor returns the subnet entry for a delegate, or false if the
// description has none yet.
func (c *Cluster) SubnetFor(delegate int) (SubnetSpec, bool) {
	for _, subnet := range c.Spec.Subnets {
		if subnet.Delegate == delegate {
			return subnet, true
		}
	}

	return SubnetSpec{}, false
}

func validateCIDR(name, cidr string) error {
	if cidr == "" {
		return fmt.Errorf("%w: %s has no CIDR", ErrCIDRInvalid, name)
	}

	if _, _, err := net.ParseCIDR(cidr); err != nil {
		return fmt.Errorf("%w: %s %q: %v", ErrCIDRInvalid, name, cidr, err)
	}

	return nil
}
