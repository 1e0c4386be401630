// Package probe implements the read-mostly checks behind "ho probe": AWS
// connectivity, region and availability zone reachability, and the existence
// of the VPC and per-delegate subnets described by the ho.yaml file.
package probe
