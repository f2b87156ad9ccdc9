package approval

import "errors"

var (
	ErrSelfApproval    = errors.New("cannot approve or decline your own request")
	ErrRequestNotFound = errors.New("request not found")
)
