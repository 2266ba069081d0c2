package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoActiveCheckout = errors.New("no active checkout")
	ErrNotInDetails     = errors.New("checkout is not at the details step")
	ErrNotInPayment     = errors.New("checkout is not at the payment step")
	ErrEmptyCart        = errors.New("no items to checkout")
	ErrValidation       = errors.New("checkout validation failed")
)

// ValidationError reports which required details fields are missing. It
// matches ErrValidation under errors.Is.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("checkout validation failed: missing %s", strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
