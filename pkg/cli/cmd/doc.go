// Package cmd assembles the ho command tree.
package cmd
