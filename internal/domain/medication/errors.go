package medication

import "errors"

var ErrNotRefillable = errors.New("medication has no expiry date to refill")
