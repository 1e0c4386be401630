package delegate

import "fmt"

// ValidateAgainstCount confirms that a parsed delegate selection is consistent
// with the delegate count configured for the cluster before any operation is
// dispatched.
//
// A nil (or empty) selection means "no filter" and always validates. The count
// itself must lie within [MinDelegate, MaxDelegate]; a count outside that range
// returns ErrDelegateCountInvalid so configuration faults surface distinctly
// from user-input faults.
func ValidateAgainstCount(list []int, count int) error {
	if len(list) == 0 {
		return nil
	}

	if count < MinDelegate || count > MaxDelegate {
		return fmt.Errorf(
			"%w: %d (must be between %d and %d)",
			ErrDelegateCountInvalid, count, MinDelegate, MaxDelegate,
		)
	}

	if last := list[len(list)-1]; last > count {
		return fmt.Errorf(
			"%w: delegate %d requested but the cluster configures only %d",
			ErrRangeExceedsCount, last, count,
		)
	}

	return nil
}
