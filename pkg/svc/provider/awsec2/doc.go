// Package awsec2 implements the AWS EC2 provider for handson lab clusters.
//
// The provider wraps a narrow slice of the EC2 API behind the API interface so
// probe and provisioning code can be exercised against fakes. All lookups are
// scoped by handson-owned tags.
package awsec2
