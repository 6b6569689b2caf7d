package results

import "errors"

// ErrNotFound reports a missing draw or result reference.
var ErrNotFound = errors.New("not found")

// InvalidInputError reports a caller mistake: malformed numbers, duplicate
// numbers, an empty winning set or a bad decision value.
type InvalidInputError struct {
	Reason string
}

func (e InvalidInputError) Error() string { return e.Reason }

func invalid(reason string) error { return InvalidInputError{Reason: reason} }

// IsInvalidInput reports whether err is an InvalidInputError.
func IsInvalidInput(err error) bool {
	var ie InvalidInputError
	return errors.As(err, &ie)
}
