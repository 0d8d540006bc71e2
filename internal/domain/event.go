package domain

import "errors"

var (
	ErrRoleNotFound       = errors.New("role not found on event")
	ErrRoleFull           = errors.New("role is at capacity")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrBudgetTotalMissing = errors.New("budget total does not match bucket sum")
)

// FindRole returns the role with the exact given name, or nil.
// Lookup is by exact name match only.
func (e *Event) FindRole(name string) *Role {
	for i := range e.Roles {
		if e.Roles[i].Name == name {
			return &e.Roles[i]
		}
	}
	return nil
}

// CanFill reports whether the named role exists and has remaining capacity.
func (e *Event) CanFill(roleName string) bool {
	r := e.FindRole(roleName)
	return r != nil && r.Filled < r.Count
}

// ApplyFill increments the named role's filled counter by one. It re-verifies
// capacity so a caller that skipped CanFill cannot overfill a role.
func (e *Event) ApplyFill(roleName string) error {
	r := e.FindRole(roleName)
	if r == nil {
		return ErrRoleNotFound
	}
	if r.Filled >= r.Count {
		return ErrRoleFull
	}
	r.Filled++
	return nil
}

// OpenRoles returns the roles that still have remaining capacity, in event
// order.
func (e *Event) OpenRoles() []Role {
	var open []Role
	for _, r := range e.Roles {
		if r.Filled < r.Count {
			open = append(open, r)
		}
	}
	return open
}

// Revenue resolves the event's revenue: an explicit positive figure always
// wins, otherwise the sum of assignment totals is used as a fallback.
func (e *Event) Revenue(assignments []Assignment) float64 {
	if e.ExplicitRevenue > 0 {
		return e.ExplicitRevenue
	}
	var sum float64
	for _, a := range assignments {
		sum += a.TotalPay
	}
	return sum
}

// ValidateBudget checks that Total equals the sum of the allocation buckets
// unless the total was explicitly overridden.
func (b Budget) Validate() error {
	if b.OverrideTotal {
		return nil
	}
	sum := b.Staffing + b.Logistics + b.Marketing + b.Catering + b.Technology + b.Miscellaneous
	if sum != b.Total {
		return ErrBudgetTotalMissing
	}
	return nil
}

// CanTransition reports whether an event may move from its current status to
// next. The lifecycle is linear (pending/upcoming -> live -> completed) with
// cancellation allowed from any non-terminal state.
func (e *Event) CanTransition(next EventStatus) bool {
	if e.Status == EventCompleted || e.Status == EventCancelled {
		return false
	}
	switch next {
	case EventCancelled:
		return true
	case EventLive:
		return e.Status == EventPending || e.Status == EventUpcoming
	case EventCompleted:
		return e.Status == EventLive
	case EventUpcoming:
		return e.Status == EventPending
	default:
		return false
	}
}
