package verification

import (
	"errors"
	"fmt"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrVerificationNotFound  = errors.New("verification not found")
	ErrOTCExpired            = errors.New("otc expired")
	ErrOTCAttemptsExceeded   = errors.New("otc attempts exceeded")
	ErrInvalidOTC            = errors.New("invalid otc")
	ErrVerificationClosed    = errors.New("verification already closed")
)

// InvalidOTCError несёт остаток попыток. errors.Is(err, ErrInvalidOTC) работает.
type InvalidOTCError struct {
	AttemptsLeft int
}

func (e *InvalidOTCError) Error() string {
	return fmt.Sprintf("invalid otc, %d attempts left", e.AttemptsLeft)
}

func (e *InvalidOTCError) Is(target error) bool {
	return target == ErrInvalidOTC
}
