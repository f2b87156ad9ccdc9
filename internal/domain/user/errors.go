package user

import "errors"

// ErrPermissionDenied is the authorization failure surfaced when a role or
// scoping guard blocks an action. It is raised, never silently swallowed.
var ErrPermissionDenied = errors.New("permission denied")
