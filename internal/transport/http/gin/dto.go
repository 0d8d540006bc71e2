package httpgin

import (
	"time"

	"github.com/kirinyoku/crew-go/internal/domain"
)

type PaymentBreakdownInput struct {
	Type                    string  `json:"type" binding:"required,oneof=hourly fixed daily"`
	HourlyRate              float64 `json:"hourly_rate" binding:"gte=0"`
	TotalHours              float64 `json:"total_hours" binding:"gte=0"`
	FixedAmount             float64 `json:"fixed_amount" binding:"gte=0"`
	OvertimeRate            float64 `json:"overtime_rate" binding:"gte=0"`
	OvertimeHours           float64 `json:"overtime_hours" binding:"gte=0"`
	Bonus                   float64 `json:"bonus" binding:"gte=0"`
	TransportationAllowance float64 `json:"transportation_allowance" binding:"gte=0"`
	MealAllowance           float64 `json:"meal_allowance" binding:"gte=0"`
	Deductions              float64 `json:"deductions" binding:"gte=0"`
}

func (p PaymentBreakdownInput) toDomain() domain.PaymentBreakdown {
	return domain.PaymentBreakdown{
		Type:                    domain.PaymentType(p.Type),
		HourlyRate:              p.HourlyRate,
		TotalHours:              p.TotalHours,
		FixedAmount:             p.FixedAmount,
		OvertimeRate:            p.OvertimeRate,
		OvertimeHours:           p.OvertimeHours,
		Bonus:                   p.Bonus,
		TransportationAllowance: p.TransportationAllowance,
		MealAllowance:           p.MealAllowance,
		Deductions:              p.Deductions,
	}
}

type CreateAssignmentRequest struct {
	StaffID  int64                 `json:"staff_id" binding:"required"`
	RoleName string                `json:"role_name" binding:"required"`
	Payment  PaymentBreakdownInput `json:"payment" binding:"required"`
}

type QuickAssignRequest struct {
	StaffID  int64  `json:"staff_id" binding:"required"`
	RoleName string `json:"role_name" binding:"required"`
}

type DecideBookingRequest struct {
	Decision string `json:"decision" binding:"required,oneof=approve reject"`
}

type ShiftRequest struct {
	Date         string   `json:"date" binding:"required"`
	StartTime    string   `json:"start_time" binding:"required"`
	EndTime      string   `json:"end_time" binding:"required"`
	Role         string   `json:"role"`
	Wage         *float64 `json:"wage"`
	Instructions string   `json:"instructions"`
}

type RoleInput struct {
	Name  string `json:"name" binding:"required"`
	Count int    `json:"count" binding:"gte=0"`
}

type CreateEventRequest struct {
	Title           string        `json:"title" binding:"required"`
	Location        string        `json:"location"`
	Description     string        `json:"description"`
	StartsAt        string        `json:"starts_at" binding:"required"`
	EndsAt          string        `json:"ends_at"`
	Roles           []RoleInput   `json:"roles" binding:"dive"`
	Budget          domain.Budget `json:"budget"`
	ExplicitRevenue float64       `json:"explicit_revenue" binding:"gte=0"`
	SeedDefaultRole bool          `json:"seed_default_role"`
	StaffRequired   int           `json:"staff_required" binding:"gte=0"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending upcoming live completed cancelled"`
}

type CreateStaffRequest struct {
	Name         string  `json:"name" binding:"required"`
	RoleTag      string  `json:"role_tag"`
	Availability string  `json:"availability"`
	BaseRate     float64 `json:"base_rate" binding:"gte=0"`
}

type CreateBookingRequest struct {
	EventType           string `json:"event_type" binding:"required"`
	Location            string `json:"location"`
	Date                string `json:"date" binding:"required"`
	Duration            string `json:"duration"`
	BudgetNote          string `json:"budget_note"`
	ContactName         string `json:"contact_name" binding:"required"`
	ContactEmail        string `json:"contact_email" binding:"required,email"`
	ContactPhone        string `json:"contact_phone"`
	Venue               string `json:"venue"`
	SpecialRequirements string `json:"special_requirements"`
	Servers             int    `json:"servers" binding:"gte=0"`
	Hosts               int    `json:"hosts" binding:"gte=0"`
	Other               int    `json:"other" binding:"gte=0"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CreateEventResponse struct {
	EventID int64 `json:"event_id"`
}

type CreateStaffResponse struct {
	StaffID int64 `json:"staff_id"`
}

type CreateBookingResponse struct {
	BookingID int64 `json:"booking_id"`
}

func parseRFC3339(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}
