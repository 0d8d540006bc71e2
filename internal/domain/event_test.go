package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanFill(t *testing.T) {
	e := &Event{Roles: []Role{
		{Name: "Server", Count: 2, Filled: 1},
		{Name: "Hostess", Count: 1, Filled: 1},
	}}

	assert.True(t, e.CanFill("Server"))
	assert.False(t, e.CanFill("Hostess"), "full role must not accept fills")
	assert.False(t, e.CanFill("server"), "lookup is exact-match, not fuzzy")
	assert.False(t, e.CanFill("Bartender"))
}

func TestApplyFill(t *testing.T) {
	e := &Event{Roles: []Role{{Name: "Server", Count: 2}}}

	assert.NoError(t, e.ApplyFill("Server"))
	assert.NoError(t, e.ApplyFill("Server"))
	assert.Equal(t, 2, e.Roles[0].Filled)

	err := e.ApplyFill("Server")
	assert.ErrorIs(t, err, ErrRoleFull)
	assert.Equal(t, 2, e.Roles[0].Filled, "filled never exceeds count")

	assert.ErrorIs(t, e.ApplyFill("Bartender"), ErrRoleNotFound)
}

func TestOpenRoles(t *testing.T) {
	e := &Event{Roles: []Role{
		{Name: "Server", Count: 3, Filled: 1},
		{Name: "Hostess", Count: 2, Filled: 2},
		{Name: "General Staff", Count: 1, Filled: 0},
	}}

	open := e.OpenRoles()
	assert.Len(t, open, 2)
	assert.Equal(t, "Server", open[0].Name, "event order is preserved")
	assert.Equal(t, "General Staff", open[1].Name)
}

func TestRevenueFallback(t *testing.T) {
	assignments := []Assignment{{TotalPay: 150}, {TotalPay: 250}}

	explicit := &Event{ExplicitRevenue: 1000}
	assert.Equal(t, 1000.0, explicit.Revenue(assignments), "explicit positive revenue wins")

	derived := &Event{ExplicitRevenue: 0}
	assert.Equal(t, 400.0, derived.Revenue(assignments), "zero explicit revenue falls back to assignment sum")

	assert.Equal(t, 0.0, derived.Revenue(nil))
}

func TestBudgetValidate(t *testing.T) {
	ok := Budget{Staffing: 500, Logistics: 200, Catering: 300, Total: 1000}
	assert.NoError(t, ok.Validate())

	bad := Budget{Staffing: 500, Total: 900}
	assert.ErrorIs(t, bad.Validate(), ErrBudgetTotalMissing)

	overridden := Budget{Staffing: 500, Total: 900, OverrideTotal: true}
	assert.NoError(t, overridden.Validate())
}

func TestEventCanTransition(t *testing.T) {
	tests := []struct {
		from EventStatus
		to   EventStatus
		want bool
	}{
		{EventPending, EventUpcoming, true},
		{EventPending, EventLive, true},
		{EventUpcoming, EventLive, true},
		{EventLive, EventCompleted, true},
		{EventPending, EventCancelled, true},
		{EventLive, EventCancelled, true},
		{EventCompleted, EventCancelled, false},
		{EventCancelled, EventLive, false},
		{EventUpcoming, EventCompleted, false},
		{EventLive, EventUpcoming, false},
	}

	for _, tt := range tests {
		e := &Event{Status: tt.from}
		assert.Equalf(t, tt.want, e.CanTransition(tt.to), "%s -> %s", tt.from, tt.to)
	}
}
