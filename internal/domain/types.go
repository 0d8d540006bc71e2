package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventPending   EventStatus = "pending"
	EventUpcoming  EventStatus = "upcoming"
	EventLive      EventStatus = "live"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

type AssignmentStatus string

const (
	AssignmentPending  AssignmentStatus = "pending"
	AssignmentApproved AssignmentStatus = "approved"
)

type BookingStatus string

const (
	BookingPending     BookingStatus = "pending"
	BookingUnderReview BookingStatus = "under_review"
	BookingApproved    BookingStatus = "approved"
	BookingRejected    BookingStatus = "rejected"
	BookingConverted   BookingStatus = "converted"
)

type PaymentType string

const (
	PaymentHourly PaymentType = "hourly"
	PaymentFixed  PaymentType = "fixed"
	PaymentDaily  PaymentType = "daily"
)

// DefaultRoleName is the sink role seeded for events created without an
// explicit role list.
const DefaultRoleName = "General Staff"

// Role is a named headcount requirement on an event.
// Invariant: 0 <= Filled <= Count.
type Role struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Filled int    `json:"filled"`
}

func (r *Role) Remaining() int {
	return r.Count - r.Filled
}

type Budget struct {
	Staffing      float64 `json:"staffing"`
	Logistics     float64 `json:"logistics"`
	Marketing     float64 `json:"marketing"`
	Catering      float64 `json:"catering"`
	Technology    float64 `json:"technology"`
	Miscellaneous float64 `json:"miscellaneous"`
	Total         float64 `json:"total"`
	Spent         float64 `json:"spent"`
	// OverrideTotal permits Total to diverge from the bucket sum.
	OverrideTotal bool `json:"override_total"`
}

type Event struct {
	ID              int64       `json:"id"`
	Title           string      `json:"title"`
	Location        string      `json:"location"`
	Description     string      `json:"description"`
	StartsAt        time.Time   `json:"starts_at"`
	EndsAt          *time.Time  `json:"ends_at,omitempty"`
	Status          EventStatus `json:"status"`
	Roles           []Role      `json:"roles"`
	Budget          Budget      `json:"budget"`
	ExplicitRevenue float64     `json:"explicit_revenue"`
	CreatedAt       time.Time   `json:"created_at"`
}

// PaymentBreakdown is the structured input from which an assignment's total
// pay is computed. All amounts are decimal values in the operating currency.
type PaymentBreakdown struct {
	Type                    PaymentType `json:"type"`
	HourlyRate              float64     `json:"hourly_rate"`
	TotalHours              float64     `json:"total_hours"`
	FixedAmount             float64     `json:"fixed_amount"`
	OvertimeRate            float64     `json:"overtime_rate"`
	OvertimeHours           float64     `json:"overtime_hours"`
	Bonus                   float64     `json:"bonus"`
	TransportationAllowance float64     `json:"transportation_allowance"`
	MealAllowance           float64     `json:"meal_allowance"`
	Deductions              float64     `json:"deductions"`
}

// IsZero reports whether the breakdown carries no payment data at all.
// Quick-assigned staff start with a zero breakdown to be completed later.
func (b PaymentBreakdown) IsZero() bool {
	return b == PaymentBreakdown{}
}

// Assignment binds one staff member to one role on one event.
// Immutable once created; re-assignment is a new assignment.
type Assignment struct {
	ID        uuid.UUID        `json:"id"`
	EventID   int64            `json:"event_id"`
	StaffID   int64            `json:"staff_id"`
	Role      string           `json:"role"`
	Status    AssignmentStatus `json:"status"`
	Payment   PaymentBreakdown `json:"payment"`
	TotalPay  float64          `json:"total_pay"`
	CreatedAt time.Time        `json:"created_at"`
}

type Contact struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// StaffCounts is a booking's coarse requested headcount per category.
type StaffCounts struct {
	Servers int `json:"servers"`
	Hosts   int `json:"hosts"`
	Other   int `json:"other"`
}

// Booking captures an inbound staffing request before it becomes an event.
type Booking struct {
	ID                  int64         `json:"id"`
	EventType           string        `json:"event_type"`
	Location            string        `json:"location"`
	Date                time.Time     `json:"date"`
	Duration            string        `json:"duration"`
	BudgetNote          string        `json:"budget_note"`
	Contact             Contact       `json:"contact"`
	Venue               string        `json:"venue"`
	SpecialRequirements string        `json:"special_requirements"`
	Staff               StaffCounts   `json:"staff"`
	Status              BookingStatus `json:"status"`
	ConvertedEventID    *int64        `json:"converted_event_id,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
}

// Staff is read-only reference data owned by the staff directory.
type Staff struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	RoleTag      string  `json:"role_tag"`
	Availability string  `json:"availability"`
	BaseRate     float64 `json:"base_rate"`
}

// Shift is a dated, timed work block derived from an existing assignment.
// It is a scheduling projection; creating one never changes role capacity.
type Shift struct {
	ID           uuid.UUID `json:"id"`
	AssignmentID uuid.UUID `json:"assignment_id"`
	Date         time.Time `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	Role         string    `json:"role"`
	Wage         *float64  `json:"wage,omitempty"`
	Instructions string    `json:"instructions"`
}

// EventSnapshot is the authoritative post-operation view returned by every
// mutating operation. Callers never compute derived state themselves.
type EventSnapshot struct {
	Event       Event        `json:"event"`
	Assignments []Assignment `json:"assignments"`
	Revenue     float64      `json:"revenue"`
}

// Suggestion is one ranked candidate from the matching service.
type Suggestion struct {
	StaffID    int64   `json:"staff_id"`
	RoleName   string  `json:"role_name"`
	MatchScore float64 `json:"match_score"`
	Reason     string  `json:"reason"`
}
