package dexter

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the only failure the calculator reports. It covers
// amounts that fail to coerce, amounts outside their domain, and trades the
// pool cannot satisfy.
var ErrInvalidInput = errors.New("invalid input")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}
