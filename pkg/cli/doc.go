// Package cli provides reusable helpers for command wiring and execution.
//
// This package is organized into subpackages for different functionality:
//
//   - cli/cmd: the ho command tree (probe and install commands)
//   - cli/helpers: config manager and runtime container wiring for commands
//   - cli/options: delegate selection flags shared by probe and install
//   - cli/ui: user interface components (errorhandler)
//
// The utilities in this package follow dependency injection patterns and
// integrate with the runtime container for testability and flexibility.
package cli
