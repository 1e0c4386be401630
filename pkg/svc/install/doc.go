// Package install provisions the lab environment for a selection of
// delegates: it validates the selection against the cluster description, then
// drives creation of the VPC and the selected delegate subnets.
package install
