package booking

import "errors"

var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("booking already decided")
	ErrInvalidDecision   = errors.New("decision must be approve or reject")
)
