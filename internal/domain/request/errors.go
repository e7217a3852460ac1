package request

import "errors"

var (
	ErrRequestNotFound = errors.New("request not found")
	// ErrAlreadyProcessed guards the pending -> approved/rejected
	// transition; a resolved request never changes again.
	ErrAlreadyProcessed = errors.New("request already processed")
	ErrShiftTaken       = errors.New("shift was already taken or no longer open")
	ErrSwapNotAccepted  = errors.New("swap has not been accepted by the swap partner")
	ErrNotSwapPartner   = errors.New("only the requested swap partner can respond")
	ErrSwapNotOpen      = errors.New("swap proposal is no longer open for a response")
	ErrInvalidType      = errors.New("invalid request type")
)
