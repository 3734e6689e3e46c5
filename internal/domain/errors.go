package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidDocument indicates a pricing document that does not match the
// expected schema. The source chain treats it like any other fetch failure.
var ErrInvalidDocument = errors.New("invalid pricing document")

// NotFoundError is returned when no price record exists for a
// provider/model pair under any key variant tried.
type NotFoundError struct {
	Provider string
	Model    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("pricing not found for %s/%s", e.Provider, e.Model)
}

// IsNotFound reports whether err is a pricing not-found error.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
