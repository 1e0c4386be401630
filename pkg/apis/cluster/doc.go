// Package cluster provides lab cluster description API types.
//
// This package contains versioned API types for the handson cluster
// description:
//
//   - v1alpha1: Current API version for the cluster description
//
// The cluster types define the declarative format used in ho.yaml files.
package cluster
