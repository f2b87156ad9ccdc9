package leave

import "errors"

var (
	ErrAlreadyProcessed = errors.New("leave request already processed")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrUnknownType      = errors.New("unknown leave type")
)
