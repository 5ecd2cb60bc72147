package linked_seq

import "github.com/pkg/errors"

var (
	// ErrInvalidState is returned by cursor operations when there is no
	// current element.
	ErrInvalidState = errors.New("no current element")

	// ErrNullArgument is returned when a required sequence argument is nil.
	ErrNullArgument = errors.New("sequence argument is nil")
)
