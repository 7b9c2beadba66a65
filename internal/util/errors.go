// internal/util/errors.go
package util

import "errors"

// Common application-specific errors. The store service returns these
// as stable error kinds; the HTTP layer maps them to status codes and
// user-facing messages.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input provided")
	ErrDuplicateEntry = errors.New("duplicate entry") // For cases like creating a profile with an existing username

	ErrUserNotFound = errors.New("user not found")
	ErrGameNotFound = errors.New("game not found")
	ErrInvalidTier  = errors.New("invalid subscription tier")

	ErrAlreadyOwned              = errors.New("game already purchased")
	ErrAlreadyActiveSubscription = errors.New("user already has an active subscription")
	ErrNoActiveSubscription      = errors.New("no active subscription found")

	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
