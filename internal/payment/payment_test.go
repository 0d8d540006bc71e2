package payment

import (
	"math"
	"testing"

	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeHourly(t *testing.T) {
	b := domain.PaymentBreakdown{
		Type:                    domain.PaymentHourly,
		HourlyRate:              20,
		TotalHours:              10,
		OvertimeRate:            30,
		OvertimeHours:           2,
		Bonus:                   50,
		TransportationAllowance: 15,
		MealAllowance:           10,
		Deductions:              25,
	}

	total, err := Compute(b)

	assert.NoError(t, err)
	// 20*10 + 30*2 + 50 + 15 + 10 - 25
	assert.Equal(t, 310.0, total)
}

func TestComputeFixedIgnoresHours(t *testing.T) {
	base := domain.PaymentBreakdown{
		Type:        domain.PaymentFixed,
		FixedAmount: 500,
		Bonus:       20,
		Deductions:  10,
	}

	total, err := Compute(base)
	assert.NoError(t, err)
	assert.Equal(t, 510.0, total)

	// Changing hourly fields must not alter a fixed total.
	withHours := base
	withHours.HourlyRate = 99
	withHours.TotalHours = 40
	withHours.OvertimeRate = 50
	withHours.OvertimeHours = 5

	totalWithHours, err := Compute(withHours)
	assert.NoError(t, err)
	assert.Equal(t, total, totalWithHours)
}

func TestComputeDailyUsesFixedEightHourBase(t *testing.T) {
	b := domain.PaymentBreakdown{
		Type:          domain.PaymentDaily,
		HourlyRate:    25,
		TotalHours:    12, // ignored for daily pay
		OvertimeRate:  40,
		OvertimeHours: 1,
		MealAllowance: 10,
	}

	total, err := Compute(b)

	assert.NoError(t, err)
	// 25*8 + 40*1 + 10
	assert.Equal(t, 250.0, total)
}

func TestComputeValidation(t *testing.T) {
	tests := []struct {
		name string
		b    domain.PaymentBreakdown
	}{
		{
			name: "hourly with zero rate",
			b:    domain.PaymentBreakdown{Type: domain.PaymentHourly, TotalHours: 8},
		},
		{
			name: "hourly with zero hours",
			b:    domain.PaymentBreakdown{Type: domain.PaymentHourly, HourlyRate: 20},
		},
		{
			name: "fixed with zero amount",
			b:    domain.PaymentBreakdown{Type: domain.PaymentFixed, Bonus: 100},
		},
		{
			name: "negative bonus is rejected, not clamped",
			b: domain.PaymentBreakdown{
				Type: domain.PaymentHourly, HourlyRate: 20, TotalHours: 8, Bonus: -5,
			},
		},
		{
			name: "non-finite input",
			b: domain.PaymentBreakdown{
				Type: domain.PaymentHourly, HourlyRate: math.Inf(1), TotalHours: 8,
			},
		},
		{
			name: "unknown payment type",
			b:    domain.PaymentBreakdown{Type: "weekly", FixedAmount: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := Compute(tt.b)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Zero(t, total)
		})
	}
}

func TestComputeNonPositiveTotal(t *testing.T) {
	b := domain.PaymentBreakdown{
		Type:        domain.PaymentFixed,
		FixedAmount: 100,
		Deductions:  100,
	}

	_, err := Compute(b)
	assert.ErrorIs(t, err, ErrNonPositiveTotal)

	b.Deductions = 150
	_, err = Compute(b)
	assert.ErrorIs(t, err, ErrNonPositiveTotal)
}

func TestComputeDailyWithoutRate(t *testing.T) {
	// Daily pay with no rate is structurally fine; only the positive-total
	// rule applies.
	b := domain.PaymentBreakdown{Type: domain.PaymentDaily, Bonus: 120}

	total, err := Compute(b)

	assert.NoError(t, err)
	assert.Equal(t, 120.0, total)
}
