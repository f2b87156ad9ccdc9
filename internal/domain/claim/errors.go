package claim

import "errors"

var (
	ErrClaimAlreadyProcessed   = errors.New("claim already processed")
	ErrInvoiceAlreadyProcessed = errors.New("invoice already processed")
	ErrNegativeAmount          = errors.New("amount must not be negative")
)
