package v1alpha1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

// NewCluster creates a new Cluster with API metadata and default values set.
func NewCluster() *Cluster {
	return &Cluster{
		TypeMeta: metav1.TypeMeta{
			Kind:       Kind,
			APIVersion: APIVersion,
		},
		Spec: NewSpec(),
	}
}

// NewSpec creates a new Spec with default values.
func NewSpec() Spec {
	return Spec{
		Region:    DefaultRegion,
		Delegates: DefaultDelegateCount,
		VPC: VPCSpec{
			CIDR: DefaultVPCCIDR,
		},
	}
}
