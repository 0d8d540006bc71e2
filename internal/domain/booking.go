package domain

import "fmt"

// Decision is an operator's verdict on a booking.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Decidable reports whether the booking may still receive a decision.
// Rejected and converted bookings are terminal; decisions are not
// reversible or reappliable.
func (b *Booking) Decidable() bool {
	return b.Status == BookingPending || b.Status == BookingUnderReview
}

// SeedRolesFromBooking expands a booking's coarse staff counts into the role
// list of the event it converts into. Zero-count categories are omitted; each
// role starts unfilled.
func SeedRolesFromBooking(b *Booking) []Role {
	var roles []Role
	if b.Staff.Servers > 0 {
		roles = append(roles, Role{Name: "Server", Count: b.Staff.Servers})
	}
	if b.Staff.Hosts > 0 {
		roles = append(roles, Role{Name: "Hostess", Count: b.Staff.Hosts})
	}
	if b.Staff.Other > 0 {
		roles = append(roles, Role{Name: DefaultRoleName, Count: b.Staff.Other})
	}
	return roles
}

// EventFromBooking builds the event an approved booking converts into. The
// event starts in the awaiting-staffing state, never live.
func EventFromBooking(b *Booking) Event {
	title := b.EventType
	if b.Venue != "" {
		title = fmt.Sprintf("%s at %s", b.EventType, b.Venue)
	}
	desc := fmt.Sprintf("Booked by %s", b.Contact.Name)
	if b.SpecialRequirements != "" {
		desc += ". " + b.SpecialRequirements
	}
	return Event{
		Title:       title,
		Location:    b.Location,
		Description: desc,
		StartsAt:    b.Date,
		Status:      EventUpcoming,
		Roles:       SeedRolesFromBooking(b),
	}
}
