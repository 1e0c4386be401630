// Package apis provides API type definitions for handson resources.
//
// This package contains versioned API types following Kubernetes API conventions:
//
//   - cluster: lab cluster description types for handson declarative configuration
//
// The API types are designed to be serializable to YAML and support
// declarative configuration workflows.
package apis
