package v1alpha1

import (
	"fmt"

	"sigs.k8s.io/yaml"
)

// ToYAML renders the cluster description for writing back to disk, e.g. after
// a provisioning step filled in VPC or subnet IDs.
func (c *Cluster) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cluster description: %w", err)
	}

	return data, nil
}

// FromYAML parses a cluster description document. Fields absent from the
// document keep their defaults.
func FromYAML(data []byte) (*Cluster, error) {
	cluster := NewCluster()

	err := yaml.UnmarshalStrict(data, cluster)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal cluster description: %w", err)
	}

	return cluster, nil
}
