package lsb
import (
	"errors"
	"fmt"
)

var (
	ErrCapacityExceeded = errors.New("capacity exceeded")
	ErrDelimiterNotFound = errors.New("no hidden message found")
	ErrInvalidBuffer = errors.New("invalid pixel buffer")
)

/*
 * CapacityError carries the figures the front ends show to the user.
 * Capacity and Required are byte counts, Required includes the delimiter.
 */
type CapacityError struct {
	Capacity	int
	Required	int
}

func(e *CapacityError) Error() string {
	usable := e.Capacity - len(Delimiter)
	if usable < 0 {
		usable = 0
	}
	return fmt.Sprintf("Message too large! Image can hold ≈%d chars but the message requires %d chars.",
		usable, e.Required)
}

func(e *CapacityError) Unwrap() error {
	return ErrCapacityExceeded
}
