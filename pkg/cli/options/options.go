// Package options holds the delegate selection flags shared by commands that
// operate on a subset of the lab delegates.
package options

import (
	"errors"
	"fmt"

	v1alpha1 "github.com/smithfarm/handson/pkg/apis/cluster/v1alpha1"
	"github.com/smithfarm/handson/pkg/delegate"
	"github.com/spf13/cobra"
)

// Flag names shared across probe and install commands.
const (
	// AllFlagName selects every delegate, including the Salt Master.
	AllFlagName = "all"
	// MasterFlagName adds the Salt Master (delegate 0) to the selection.
	MasterFlagName = "master"
	// DryRunFlagName reports what would happen without touching AWS.
	DryRunFlagName = "dry-run"
)

// ErrSelectionConflict is returned when --all is combined with an explicit
// delegate range argument.
var ErrSelectionConflict = errors.New(
	"--all cannot be combined with an explicit delegate range",
)

// AddSelectionFlags registers the delegate selection flags on a command that
// accepts an optional delegate range argument.
func AddSelectionFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(AllFlagName, false, "Operate on all delegates, including the Salt Master")
	cmd.Flags().Bool(MasterFlagName, false, "Include the Salt Master (delegate 0)")
}

// AddDryRunFlag registers the dry-run flag on mutating commands.
func AddDryRunFlag(cmd *cobra.Command) {
	cmd.Flags().Bool(DryRunFlagName, false, "Report planned actions without changing anything")
}

// ResolveSelection parses the selection flags and the optional positional
// delegate range into a concrete selection. It returns nil when the whole
// lab is targeted.
func ResolveSelection(cmd *cobra.Command, args []string) ([]int, error) {
	all, master, err := readFlags(cmd)
	if err != nil {
		return nil, err
	}

	selection, err := delegate.ParseOptionalArg(args)
	if err != nil {
		return nil, err
	}

	if all {
		if selection != nil {
			return nil, ErrSelectionConflict
		}

		return nil, nil
	}

	if selection == nil {
		if master {
			return []int{v1alpha1.MasterDelegate}, nil
		}

		return nil, nil
	}

	if master {
		selection = append([]int{v1alpha1.MasterDelegate}, selection...)
	}

	return selection, nil
}

func readFlags(cmd *cobra.Command) (bool, bool, error) {
	all, err := cmd.Flags().GetBool(AllFlagName)
	if err != nil {
		return false, false, fmt.Errorf("failed to read --%s flag: %w", AllFlagName, err)
	}

	master, err := cmd.Flags().GetBool(MasterFlagName)
	if err != nil {
		return false, false, fmt.Errorf("failed to read --%s flag: %w", MasterFlagName, err)
	}

	return all, master, nil
}
