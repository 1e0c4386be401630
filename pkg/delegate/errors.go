package delegate

import "errors"

// ErrInvalidRange is returned when a delegate selection expression is malformed
// or selects delegates outside the addressable range.
var ErrInvalidRange = errors.New("invalid delegate range")

// ErrDelegateCountInvalid is returned when the delegate count configured for
// the cluster is missing or outside its own valid range. It indicates a
// misconfigured description file, not bad user input.
var ErrDelegateCountInvalid = errors.New("invalid delegate count in cluster configuration")

// ErrRangeExceedsCount is returned when a well-formed delegate selection names
// a delegate beyond the count configured for the cluster.
var ErrRangeExceedsCount = errors.New("delegate range exceeds configured delegate count")
