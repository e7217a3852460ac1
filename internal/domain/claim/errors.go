package claim

import "errors"

var (
	ErrClaimNotFound   = errors.New("open shift request not found")
	ErrAlreadyClaimed  = errors.New("you already have a pending request for this shift")
	ErrClaimNotPending = errors.New("open shift request has already been processed")
)
