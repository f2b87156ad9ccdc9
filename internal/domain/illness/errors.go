package illness

import "errors"

var ErrInvalidDateRange = errors.New("issue date must not be after expiry date")
