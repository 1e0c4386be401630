// Package io provides utilities for input and output operations related to
// configuration management.
//
// Subpackages:
//   - configmanager: cluster description loading, validation, and persistence
package io
