// Package payment computes an assignment's total pay from a structured
// breakdown. It is pure: no state, no collaborators.
package payment

import (
	"errors"
	"fmt"
	"math"

	"github.com/kirinyoku/crew-go/internal/domain"
)

// dailyBaseHours is the fixed base applied to daily-rate assignments
// regardless of the reported total hours.
const dailyBaseHours = 8

var (
	ErrInvalid          = errors.New("invalid payment breakdown")
	ErrNonPositiveTotal = errors.New("computed payment total is not positive")
)

// ValidationError describes a single rejected breakdown field. It unwraps to
// ErrInvalid so callers can classify without inspecting the message.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid payment breakdown: %s: %s", e.Field, e.Reason)
}

func (e ValidationError) Unwrap() error { return ErrInvalid }

// Compute validates the breakdown and returns its total monetary amount.
//
// Returns:
//   - float64: the computed total, always > 0 on success.
//   - error: a ValidationError (wrapping ErrInvalid) for malformed input, or
//     ErrNonPositiveTotal when the arithmetic yields <= 0.
func Compute(b domain.PaymentBreakdown) (float64, error) {
	if err := validate(b); err != nil {
		return 0, err
	}

	var total float64
	switch b.Type {
	case domain.PaymentHourly:
		total = b.HourlyRate * b.TotalHours
	case domain.PaymentFixed:
		// Hours and rates are deliberately ignored for fixed pay.
		total = b.FixedAmount
	case domain.PaymentDaily:
		total = b.HourlyRate * dailyBaseHours
	}

	if b.Type != domain.PaymentFixed {
		total += b.OvertimeRate * b.OvertimeHours
	}
	total += b.Bonus + b.TransportationAllowance + b.MealAllowance - b.Deductions

	// Free or negative-value assignments are not representable through this
	// path; they must be rejected, not clamped.
	if total <= 0 {
		return 0, ErrNonPositiveTotal
	}

	return total, nil
}

func validate(b domain.PaymentBreakdown) error {
	fields := []struct {
		name string
		val  float64
	}{
		{"hourly_rate", b.HourlyRate},
		{"total_hours", b.TotalHours},
		{"fixed_amount", b.FixedAmount},
		{"overtime_rate", b.OvertimeRate},
		{"overtime_hours", b.OvertimeHours},
		{"bonus", b.Bonus},
		{"transportation_allowance", b.TransportationAllowance},
		{"meal_allowance", b.MealAllowance},
		{"deductions", b.Deductions},
	}
	for _, f := range fields {
		if math.IsNaN(f.val) || math.IsInf(f.val, 0) {
			return ValidationError{Field: f.name, Reason: "must be finite"}
		}
		if f.val < 0 {
			return ValidationError{Field: f.name, Reason: "must not be negative"}
		}
	}

	switch b.Type {
	case domain.PaymentHourly:
		if b.HourlyRate <= 0 {
			return ValidationError{Field: "hourly_rate", Reason: "must be positive for hourly pay"}
		}
		if b.TotalHours <= 0 {
			return ValidationError{Field: "total_hours", Reason: "must be positive for hourly pay"}
		}
	case domain.PaymentFixed:
		if b.FixedAmount <= 0 {
			return ValidationError{Field: "fixed_amount", Reason: "must be positive for fixed pay"}
		}
	case domain.PaymentDaily:
		// Daily pay has no structural requirement beyond the positive-total
		// check; the 8-hour base applies whatever rate is supplied.
	default:
		return ValidationError{Field: "type", Reason: "unknown payment type"}
	}

	return nil
}
