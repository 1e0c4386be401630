// Package delegate parses and validates delegate selections.
//
// A delegate is a numbered lab sub-environment (1-50) provisioned inside the
// AWS cluster. Commands accept a selection expression such as "1-3,7" to
// scope their work to a subset of delegates; this package expands such
// expressions into sorted lists of delegate numbers and checks them against
// the delegate count configured for the cluster.
package delegate
