package autoassign

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/kirinyoku/crew-go/internal/matching"
	"github.com/kirinyoku/crew-go/internal/service/assignment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockEvents struct {
	GetFunc func(ctx context.Context, id int64) (*domain.Event, error)
}

func (m *mockEvents) Get(ctx context.Context, id int64) (*domain.Event, error) {
	return m.GetFunc(ctx, id)
}

type mockDuplicates struct {
	ExistsFunc func(ctx context.Context, eventID, staffID int64) (bool, error)
}

func (m *mockDuplicates) ExistsForStaff(ctx context.Context, eventID, staffID int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, eventID, staffID)
	}
	return false, nil
}

type mockMatcher struct {
	SuggestionsFunc func(ctx context.Context, eventID int64, roleName string, limit int) ([]domain.Suggestion, error)
}

func (m *mockMatcher) Suggestions(ctx context.Context, eventID int64, roleName string, limit int) ([]domain.Suggestion, error) {
	return m.SuggestionsFunc(ctx, eventID, roleName, limit)
}

type mockAssigner struct {
	CreateFunc func(ctx context.Context, in assignment.CreateInput) (*domain.EventSnapshot, error)

	created []assignment.CreateInput
}

func (m *mockAssigner) Create(ctx context.Context, in assignment.CreateInput) (*domain.EventSnapshot, error) {
	if m.CreateFunc != nil {
		if _, err := m.CreateFunc(ctx, in); err != nil {
			return nil, err
		}
	}
	m.created = append(m.created, in)
	return &domain.EventSnapshot{}, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func eventWithRoles(roles ...domain.Role) *mockEvents {
	return &mockEvents{
		GetFunc: func(ctx context.Context, id int64) (*domain.Event, error) {
			return &domain.Event{ID: id, Roles: roles}, nil
		},
	}
}

func TestFillAssignsTopCandidatesUpToCapacity(t *testing.T) {
	events := eventWithRoles(domain.Role{Name: "Server", Count: 2, Filled: 0})
	matcher := &mockMatcher{
		SuggestionsFunc: func(ctx context.Context, eventID int64, roleName string, limit int) ([]domain.Suggestion, error) {
			assert.Equal(t, 2, limit, "requests only count-filled candidates")
			return []domain.Suggestion{
				{StaffID: 1, RoleName: roleName, MatchScore: 0.9},
				{StaffID: 2, RoleName: roleName, MatchScore: 0.8},
				{StaffID: 3, RoleName: roleName, MatchScore: 0.7},
			}, nil
		},
	}
	assigner := &mockAssigner{}

	svc := New(events, &mockDuplicates{}, matcher, assigner, testLogger(), Config{})

	report, err := svc.Fill(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Assigned)
	require.Len(t, assigner.created, 2, "a third candidate is never assigned")
	assert.Equal(t, int64(1), assigner.created[0].StaffID)
	assert.Equal(t, int64(2), assigner.created[1].StaffID)
}

func TestFillProcessesRolesInEventOrder(t *testing.T) {
	events := eventWithRoles(
		domain.Role{Name: "Server", Count: 1},
		domain.Role{Name: "Hostess", Count: 1},
	)
	var asked []string
	matcher := &mockMatcher{
		SuggestionsFunc: func(ctx context.Context, eventID int64, roleName string, limit int) ([]domain.Suggestion, error) {
			asked = append(asked, roleName)
			return []domain.Suggestion{{StaffID: int64(len(asked)), RoleName: roleName, MatchScore: 1}}, nil
		},
	}
	assigner := &mockAssigner{}

	svc := New(events, &mockDuplicates{}, matcher, assigner, testLogger(), Config{})

	report, err := svc.Fill(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, []string{"Server", "Hostess"}, asked)
	assert.Equal(t, 2, report.Assigned)
}

func TestFillSkipsFailedCandidatesAndContinues(t *testing.T) {
	events := eventWithRoles(domain.Role{Name: "Server", Count: 2})
	matcher := &mockMatcher{
		SuggestionsFunc: func(ctx context.Context, eventID int64, roleName string, limit int) ([]domain.Suggestion, error) {
			return []domain.Suggestion{
				{StaffID: 1, MatchScore: 0.9},
				{StaffID: 2, MatchScore: 0.8},
				{StaffID: 3, MatchScore: 0.7},
			}, nil
		},
	}
	assigner := &mockAssigner{
		CreateFunc: func(ctx context.Context, in assignment.CreateInput) (*domain.EventSnapshot, error) {
			if in.StaffID == 1 {
				return nil, assignment.ErrStaffNotFound
			}
			return nil, nil
		},
	}

	svc := New(events, &mockDuplicates{}, matcher, assigner, testLogger(), Config{})

	report, err := svc.Fill(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Assigned)
	assert.Equal(t, 1, report.Skipped)
	require.Len(t, report.Skips, 1)
	assert.Equal(t, "unknown staff", report.Skips[0].Reason)
}

func TestFillSkipsAlreadyAssignedStaff(t *testing.T) {
	events := eventWithRoles(domain.Role{Name: "Server", Count: 1})
	matcher := &mockMatcher{
		SuggestionsFunc: func(ctx context.Context, eventID int64, roleName string, limit int) ([]domain.Suggestion, error) {
			return []domain.Suggestion{
				{StaffID: 7, MatchScore: 0.9},
				{StaffID: 8, MatchScore: 0.5},
			}, nil
		},
	}
	duplicates := &mockDuplicates{
		ExistsFunc: func(ctx context.Context, eventID, staffID int64) (bool, error) {
			return staffID == 7, nil
		},
	}
	assigner := &mockAssigner{}

	svc := New(events, duplicates, matcher, assigner, testLogger(), Config{})

	report, err := svc.Fill(context.Background(), 10)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Assigned)
	assert.Equal(t, int64(8), assigner.created[0].StaffID)
	require.Len(t, report.Skips, 1)
	assert.Equal(t, "already assigned", report.Skips[0].Reason)
}

func TestFillMatcherOutageDegradesPerRole(t *testing.T) {
	events := eventWithRoles(
		domain.Role{Name: "Server", Count: 1},
		domain.Role{Name: "Hostess", Count: 1},
	)
	matcher := &mockMatcher{
		SuggestionsFunc: func(ctx context.Context, eventID int64, roleName string, limit int) ([]domain.Suggestion, error) {
			if roleName == "Server" {
				return nil, matching.ErrUnavailable
			}
			return []domain.Suggestion{{StaffID: 5, MatchScore: 1}}, nil
		},
	}
	assigner := &mockAssigner{}

	svc := New(events, &mockDuplicates{}, matcher, assigner, testLogger(), Config{})

	report, err := svc.Fill(context.Background(), 10)

	require.NoError(t, err, "partial matcher outage is not a hard failure")
	assert.Equal(t, 1, report.Assigned)
}

func TestFillMatcherFullyUnreachable(t *testing.T) {
	events := eventWithRoles(domain.Role{Name: "Server", Count: 1})
	matcher := &mockMatcher{
		SuggestionsFunc: func(ctx context.Context, eventID int64, roleName string, limit int) ([]domain.Suggestion, error) {
			return nil, matching.ErrUnavailable
		},
	}

	svc := New(events, &mockDuplicates{}, matcher, &mockAssigner{}, testLogger(), Config{})

	report, err := svc.Fill(context.Background(), 10)

	assert.ErrorIs(t, err, ErrMatcherUnavailable)
	assert.Zero(t, report.Assigned)
}

func TestFillCancelledContextKeepsCommittedFills(t *testing.T) {
	events := eventWithRoles(
		domain.Role{Name: "Server", Count: 1},
		domain.Role{Name: "Hostess", Count: 1},
	)
	ctx, cancel := context.WithCancel(context.Background())
	matcher := &mockMatcher{
		SuggestionsFunc: func(c context.Context, eventID int64, roleName string, limit int) ([]domain.Suggestion, error) {
			return []domain.Suggestion{{StaffID: 1, MatchScore: 1}}, nil
		},
	}
	assigner := &mockAssigner{
		CreateFunc: func(c context.Context, in assignment.CreateInput) (*domain.EventSnapshot, error) {
			cancel() // abandon the run after the first committed fill
			return nil, nil
		},
	}

	svc := New(events, &mockDuplicates{}, matcher, assigner, testLogger(), Config{})

	report, err := svc.Fill(ctx, 10)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, report.Assigned, "committed fills are not rolled back on cancel")
}

func TestDefaultBreakdownUsesRoleRateWithFallback(t *testing.T) {
	svc := New(nil, nil, nil, nil, testLogger(), Config{
		RoleRates:    map[string]float64{"Server": 22},
		FallbackRate: 15,
		DefaultHours: 6,
	})

	server := svc.defaultBreakdown("Server")
	assert.Equal(t, 22.0, server.HourlyRate)
	assert.Equal(t, 6.0, server.TotalHours)
	assert.Equal(t, domain.PaymentHourly, server.Type)

	other := svc.defaultBreakdown("Bartender")
	assert.Equal(t, 15.0, other.HourlyRate)
}

func TestFillEventNotFound(t *testing.T) {
	events := &mockEvents{
		GetFunc: func(ctx context.Context, id int64) (*domain.Event, error) {
			return nil, errors.New("not found")
		},
	}

	svc := New(events, &mockDuplicates{}, &mockMatcher{}, &mockAssigner{}, testLogger(), Config{})

	_, err := svc.Fill(context.Background(), 99)
	assert.ErrorIs(t, err, ErrEventNotFound)
}
