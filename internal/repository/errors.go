package repository

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrRoleNotFound      = errors.New("role not found")
	ErrRoleFull          = errors.New("role at capacity")
	ErrInvalidTransition = errors.New("invalid transition")
)
