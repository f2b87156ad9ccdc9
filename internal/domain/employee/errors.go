package employee

import "errors"

var (
	ErrEmailExists     = errors.New("email already registered")
	ErrAlreadyInactive = errors.New("employee is already deactivated")
	ErrNegativeBalance = errors.New("remaining vacation days cannot be negative")
	ErrUnknownRole     = errors.New("employee role is not recognized")
)
