package v1alpha1

import "errors"

// ErrRegionMissing is returned when the cluster description has no region.
var ErrRegionMissing = errors.New("region is missing from cluster configuration")

// ErrDelegateCountInvalid is returned when the configured delegate count is
// outside the supported range.
var ErrDelegateCountInvalid = errors.New("delegate count is invalid")

// ErrCIDRInvalid is returned when a VPC or subnet CIDR does not parse.
var ErrCIDRInvalid = errors.New("CIDR is invalid")

// ErrSubnetDelegateInvalid is returned when a subnet entry names a delegate
// outside the configured delegate count.
var ErrSubnetDelegateInvalid = errors.New("subnet names an invalid delegate")

// ErrSubnetDuplicate is returned when two subnet entries name the same delegate.
var ErrSubnetDuplicate = errors.New("duplicate subnet for delegate")
