package awsec2

import "errors"

// ErrProviderUnavailable is returned when the provider has no usable client.
var ErrProviderUnavailable = errors.New("EC2 provider unavailable")

// ErrVPCNotFound is returned when the VPC described by the cluster description
// does not exist in AWS.
var ErrVPCNotFound = errors.New("VPC not found")

// ErrSubnetNotFound is returned when a delegate subnet does not exist in AWS.
var ErrSubnetNotFound = errors.New("subnet not found")

// ErrAvailabilityZoneNotFound is returned when the configured availability
// zone does not exist in the region.
var ErrAvailabilityZoneNotFound = errors.New("availability zone not found")
