// Package shift derives schedulable work blocks from approved assignments.
// Shifts are a projection: they never affect role capacity.
package shift

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/kirinyoku/crew-go/internal/repository"
	postgresrepo "github.com/kirinyoku/crew-go/internal/repository/postgres"
)

var (
	ErrAssignmentNotFound    = errors.New("assignment not found")
	ErrAssignmentNotApproved = errors.New("assignment is not approved")
	ErrShiftNotFound         = errors.New("shift not found")
	ErrInvalidSchedule       = errors.New("invalid shift schedule")
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

type Service struct {
	store *postgresrepo.Store
}

func New(store *postgresrepo.Store) *Service {
	return &Service{store: store}
}

type Input struct {
	Date         string
	StartTime    string
	EndTime      string
	Role         string
	Wage         *float64
	Instructions string
}

// Create derives a shift from an approved assignment.
//
// Returns:
//   - *domain.Shift: the stored shift.
//   - error: shift.ErrAssignmentNotFound, shift.ErrAssignmentNotApproved, or
//     shift.ErrInvalidSchedule for malformed date/time input.
func (s *Service) Create(ctx context.Context, assignmentID string, in Input) (*domain.Shift, error) {
	const op = "service.shift.Create"

	a, err := s.store.Assignments().Get(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrAssignmentNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	if a.Status != domain.AssignmentApproved {
		return nil, fmt.Errorf("%s:%w", op, ErrAssignmentNotApproved)
	}

	date, err := ValidateSchedule(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	role := in.Role
	if role == "" {
		role = a.Role
	}

	sh := &domain.Shift{
		ID:           uuid.New(),
		AssignmentID: a.ID,
		Date:         date,
		StartTime:    in.StartTime,
		EndTime:      in.EndTime,
		Role:         role,
		Wage:         in.Wage,
		Instructions: in.Instructions,
	}

	if err := s.store.Shifts().Insert(ctx, sh); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return sh, nil
}

// Update rewrites an existing shift's schedule and details.
func (s *Service) Update(ctx context.Context, shiftID string, in Input) (*domain.Shift, error) {
	const op = "service.shift.Update"

	sh, err := s.store.Shifts().Get(ctx, shiftID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%s:%w", op, ErrShiftNotFound)
		}
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	date, err := ValidateSchedule(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	sh.Date = date
	sh.StartTime = in.StartTime
	sh.EndTime = in.EndTime
	if in.Role != "" {
		sh.Role = in.Role
	}
	sh.Wage = in.Wage
	sh.Instructions = in.Instructions

	if err := s.store.Shifts().Update(ctx, sh); err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return sh, nil
}

// ListByAssignment returns an assignment's shifts in schedule order.
func (s *Service) ListByAssignment(ctx context.Context, assignmentID string) ([]domain.Shift, error) {
	const op = "service.shift.ListByAssignment"

	list, err := s.store.Shifts().ListByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}

	return list, nil
}

// ValidateSchedule checks the calendar date and the time-of-day pair.
// Shifts are same-day only: an end time at or before the start time is
// rejected rather than read as spilling into the next day.
func ValidateSchedule(date, start, end string) (time.Time, error) {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidSchedule)
	}

	st, err := time.Parse(timeLayout, start)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: start time must be HH:MM", ErrInvalidSchedule)
	}

	et, err := time.Parse(timeLayout, end)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: end time must be HH:MM", ErrInvalidSchedule)
	}

	if !st.Before(et) {
		return time.Time{}, fmt.Errorf("%w: start time must be before end time", ErrInvalidSchedule)
	}

	return d, nil
}
