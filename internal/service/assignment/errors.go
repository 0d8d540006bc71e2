package assignment

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrStaffNotFound    = errors.New("staff not found")
	ErrRoleNotFound     = errors.New("role not found on event")
	ErrRoleFull         = errors.New("role at capacity")
	ErrRoleNameRequired = errors.New("role name is required")
)
