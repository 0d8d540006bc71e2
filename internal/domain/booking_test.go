package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecidable(t *testing.T) {
	assert.True(t, (&Booking{Status: BookingPending}).Decidable())
	assert.True(t, (&Booking{Status: BookingUnderReview}).Decidable())
	assert.False(t, (&Booking{Status: BookingRejected}).Decidable())
	assert.False(t, (&Booking{Status: BookingConverted}).Decidable())
	assert.False(t, (&Booking{Status: BookingApproved}).Decidable())
}

func TestSeedRolesFromBooking(t *testing.T) {
	b := &Booking{Staff: StaffCounts{Servers: 3, Hosts: 2, Other: 0}}

	roles := SeedRolesFromBooking(b)

	assert.Equal(t, []Role{
		{Name: "Server", Count: 3},
		{Name: "Hostess", Count: 2},
	}, roles, "zero-count categories are omitted and roles start unfilled")
}

func TestSeedRolesFromBookingEmpty(t *testing.T) {
	roles := SeedRolesFromBooking(&Booking{})
	assert.Empty(t, roles)
}

func TestEventFromBooking(t *testing.T) {
	date := time.Date(2026, 10, 12, 18, 0, 0, 0, time.UTC)
	b := &Booking{
		EventType:           "Corporate Gala",
		Location:            "Riverside",
		Venue:               "Grand Hall",
		Date:                date,
		Contact:             Contact{Name: "Dana Reeves"},
		SpecialRequirements: "Black tie service",
		Staff:               StaffCounts{Servers: 1, Other: 2},
	}

	e := EventFromBooking(b)

	assert.Equal(t, "Corporate Gala at Grand Hall", e.Title)
	assert.Equal(t, "Riverside", e.Location)
	assert.Equal(t, "Booked by Dana Reeves. Black tie service", e.Description)
	assert.Equal(t, date, e.StartsAt)
	assert.Equal(t, EventUpcoming, e.Status, "converted events await staffing, never start live")
	assert.Equal(t, []Role{
		{Name: "Server", Count: 1},
		{Name: DefaultRoleName, Count: 2},
	}, e.Roles)
}
