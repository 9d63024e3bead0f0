package ports

import "errors"

// ErrNotFound is returned by repositories when a lookup matches nothing.
// Handlers map it to 404; services treat it as a recoverable gap.
var ErrNotFound = errors.New("not found")
