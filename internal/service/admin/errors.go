package admin

import "errors"

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrInvalidRoles      = errors.New("invalid role list")
	ErrInvalidBudget     = errors.New("budget total does not match buckets")
	ErrInvalidTransition = errors.New("invalid event status transition")
)
