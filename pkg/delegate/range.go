package delegate

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

const (
	// MinDelegate is the lowest addressable delegate number.
	MinDelegate = 1
	// MaxDelegate is the highest addressable delegate number.
	MaxDelegate = 50
	// maxSpan bounds the width of a single lo-hi token so a typo like "1-500"
	// cannot expand into a huge selection.
	maxSpan = 50
)

// ParseOptionalArg maps the optional positional delegate-range argument of a
// command to a selection. An absent argument yields a nil selection, meaning
// "no filter, operate on everything".
func ParseOptionalArg(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, nil
	}

	return ParseList(args[0])
}

// ParseList expands a delegate selection expression such as "1-3,7" into a
// sorted list of unique delegate numbers, e.g. [1 2 3 7].
//
// The expression is a comma-separated list of tokens, each either a single
// number or an ascending "lo-hi" pair spanning fewer than 50 delegates. Every
// selected delegate must lie between MinDelegate and MaxDelegate inclusive.
// Any other input returns ErrInvalidRange.
func ParseList(raw string) ([]int, error) {
	var expanded []int

	for _, token := range strings.Split(raw, ",") {
		values, err := expandToken(token)
		if err != nil {
			return nil, err
		}

		expanded = append(expanded, values...)
	}

	slices.Sort(expanded)
	list := slices.Compact(expanded)

	if len(list) == 0 {
		return nil, fmt.Errorf("%w: empty selection", ErrInvalidRange)
	}

	if list[0] < MinDelegate {
		return nil, fmt.Errorf(
			"%w: delegate %d is too low (min. %d)",
			ErrInvalidRange, list[0], MinDelegate,
		)
	}

	if last := list[len(list)-1]; last > MaxDelegate {
		return nil, fmt.Errorf(
			"%w: delegate %d is too high (max. %d)",
			ErrInvalidRange, last, MaxDelegate,
		)
	}

	return list, nil
}

// expandToken expands a single comma-separated token into the delegate numbers
// it selects.
func expandToken(token string) ([]int, error) {
	parts := strings.Split(token, "-")

	switch len(parts) {
	case 1:
		value, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidRange, token)
		}

		return []int{value}, nil
	case 2:
		low, lowErr := strconv.Atoi(strings.TrimSpace(parts[0]))
		high, highErr := strconv.Atoi(strings.TrimSpace(parts[1]))

		if lowErr != nil || highErr != nil {
			return nil, fmt.Errorf("%w: %q is not a number pair", ErrInvalidRange, token)
		}

		if high <= low {
			return nil, fmt.Errorf("%w: %q does not ascend", ErrInvalidRange, token)
		}

		if high-low >= maxSpan {
			return nil, fmt.Errorf(
				"%w: %q spans more than %d delegates",
				ErrInvalidRange, token, maxSpan,
			)
		}

		values := make([]int, 0, high-low+1)
		for value := low; value <= high; value++ {
			values = append(values, value)
		}

		return values, nil
	default:
		return nil, fmt.Errorf("%w: %q has too many dashes", ErrInvalidRange, token)
	}
}
