package unavailability

import "errors"

var ErrWindowNotFound = errors.New("unavailability not found")
