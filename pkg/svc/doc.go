// Package svc provides service layer components for handson.
//
// This package contains the business logic layer that coordinates between
// the CLI commands and the underlying AWS infrastructure.
//
// Subpackages:
//   - probe: read-mostly checks of the AWS resources backing a lab
//   - install: provisioning of the VPC and per-delegate subnets
//   - provider: infrastructure providers (AWS EC2)
package svc
