// Package provider defines infrastructure providers for running lab
// environments.
//
// Providers handle infrastructure-level operations: looking up and creating
// cloud resources (VPCs, subnets) and inspecting the instances running in
// them. The probe and install services consume providers through narrow
// interfaces so they can be exercised against fakes.
//
// Currently supported providers:
//   - awsec2: AWS EC2-backed labs
package provider
