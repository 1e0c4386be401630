package v1alpha1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

const (
	// Group is the API group for handson.
	Group = "handson.dev"
	// Version is the API version for handson.
	Version = "v1alpha1"
	// Kind is the kind for handson lab clusters.
	Kind = "Cluster"
	// APIVersion is the full API version for handson.
	APIVersion = Group + "/" + Version
)

// Cluster represents one AWS-hosted lab environment: a VPC holding a subnet
// per delegate plus a dedicated Salt Master subnet, described by a single YAML
// file. It contains TypeMeta for API versioning information and Spec for the
// desired state.
type Cluster struct {
	metav1.TypeMeta `json:",inline" mapstructure:",squash"`

	Spec Spec `json:"spec,omitzero" mapstructure:"spec,omitempty"`
}

// Spec defines the desired state of a lab cluster.
type Spec struct {
	// Region is the AWS region the lab runs in.
	Region string `json:"region,omitzero"`
	// AvailabilityZone optionally pins all subnets to one availability zone.
	AvailabilityZone string `json:"availabilityZone,omitzero" mapstructure:"availabilityZone"`
	// Delegates is the number of delegate sub-environments configured for the
	// cluster. Delegate selections on the command line are validated against it.
	Delegates int `json:"delegates,omitzero"`
	// KeyName is the EC2 key pair used for all lab instances.
	KeyName string `json:"keyName,omitzero" mapstructure:"keyName"`
	// VPC describes the lab's virtual private cloud.
	VPC VPCSpec `json:"vpc,omitzero"`
	// Subnets lists the per-delegate subnets. Delegate 0 is the Salt Master
	// subnet.
	Subnets []SubnetSpec `json:"subnets,omitzero"`
}

// VPCSpec describes the lab VPC. The ID is filled in once the VPC exists in
// AWS; until then the CIDR identifies it.
type VPCSpec struct {
	ID   string `json:"id,omitzero"`
	CIDR string `json:"cidr,omitzero"`
}

// SubnetSpec describes the subnet assigned to one delegate.
type SubnetSpec struct {
	// Delegate is the delegate number the subnet belongs to (0 = Salt Master).
	Delegate int `json:"delegate"`
	// CIDR is the subnet's address block inside the VPC CIDR.
	CIDR string `json:"cidr,omitzero"`
	// ID is the AWS subnet ID, filled in once the subnet exists.
	ID string `json:"id,omitzero"`
}
