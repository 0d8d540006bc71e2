// Package autoassign bulk-fills open roles from ranked candidate suggestions.
// It is best-effort: individual candidate failures are recorded and skipped,
// never escalated, and partial success across roles is the expected outcome.
package autoassign

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/kirinyoku/crew-go/internal/matching"
	"github.com/kirinyoku/crew-go/internal/service/assignment"
)

var ErrEventNotFound = errors.New("event not found")

// ErrMatcherUnavailable is returned only when every role query failed and not
// a single assignment was made; partial matcher outages degrade to zero
// suggestions for the affected roles instead.
var ErrMatcherUnavailable = errors.New("matching service unavailable")

// Matcher supplies ranked candidates for one role. Implemented by
// matching.Client in production.
type Matcher interface {
	Suggestions(ctx context.Context, eventID int64, roleName string, limit int) ([]domain.Suggestion, error)
}

// Assigner commits a single fill. Implemented by the assignment service.
type Assigner interface {
	Create(ctx context.Context, in assignment.CreateInput) (*domain.EventSnapshot, error)
}

// EventSource loads the event whose roles are being filled.
type EventSource interface {
	Get(ctx context.Context, id int64) (*domain.Event, error)
}

// Duplicates answers whether a staff member already holds an assignment on
// the event.
type Duplicates interface {
	ExistsForStaff(ctx context.Context, eventID, staffID int64) (bool, error)
}

type Config struct {
	// RoleRates maps role names to default hourly rates for auto-created
	// assignments; FallbackRate covers roles without an entry.
	RoleRates    map[string]float64
	FallbackRate float64
	DefaultHours float64
}

type Service struct {
	events     EventSource
	duplicates Duplicates
	matcher    Matcher
	assigner   Assigner
	logger     *slog.Logger
	cfg        Config
}

func New(
	events EventSource,
	duplicates Duplicates,
	matcher Matcher,
	assigner Assigner,
	logger *slog.Logger,
	cfg Config,
) *Service {
	if cfg.FallbackRate <= 0 {
		cfg.FallbackRate = 18
	}
	if cfg.DefaultHours <= 0 {
		cfg.DefaultHours = 8
	}

	return &Service{
		events:     events,
		duplicates: duplicates,
		matcher:    matcher,
		assigner:   assigner,
		logger:     logger,
		cfg:        cfg,
	}
}

// Skip records why one candidate was passed over.
type Skip struct {
	StaffID  int64  `json:"staff_id"`
	RoleName string `json:"role_name"`
	Reason   string `json:"reason"`
}

// Report aggregates the outcome of one auto-assignment run.
type Report struct {
	Assigned int    `json:"assigned"`
	Skipped  int    `json:"skipped"`
	Skips    []Skip `json:"skips,omitempty"`
}

// Fill walks the event's roles in their seeded order and fills each
// under-capacity role from the matcher's ranked candidates. Roles are never
// re-sorted across each other, so a later role keeps its own best candidates.
//
// Returns:
//   - *Report: counts and per-candidate skip reasons, also on partial success.
//   - error: autoassign.ErrEventNotFound; autoassign.ErrMatcherUnavailable
//     when no role query succeeded and nothing was assigned; ctx.Err() when
//     the run was abandoned (already-committed fills stay).
func (s *Service) Fill(ctx context.Context, eventID int64) (*Report, error) {
	const op = "service.autoassign.Fill"

	e, err := s.events.Get(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, ErrEventNotFound)
	}

	report := &Report{}
	roleQueries := 0
	roleFailures := 0

	for _, role := range e.Roles {
		if role.Filled >= role.Count {
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}

		need := role.Count - role.Filled
		roleQueries++

		suggestions, err := s.matcher.Suggestions(ctx, eventID, role.Name, need)
		if err != nil {
			roleFailures++
			s.logger.Warn("matching degraded to zero suggestions",
				"event_id", eventID,
				"role", role.Name,
				"error", err,
			)
			continue
		}

		// The order decides who gets assigned; re-sort instead of trusting
		// the matcher's ranking.
		sort.SliceStable(suggestions, func(i, j int) bool {
			return suggestions[i].MatchScore > suggestions[j].MatchScore
		})

		filled := 0
		for _, cand := range suggestions {
			if filled >= need {
				break
			}
			if err := ctx.Err(); err != nil {
				return report, err
			}

			if dup, err := s.duplicates.ExistsForStaff(ctx, eventID, cand.StaffID); err == nil && dup {
				s.skip(report, cand.StaffID, role.Name, "already assigned")
				continue
			}

			_, err := s.assigner.Create(ctx, assignment.CreateInput{
				EventID:  eventID,
				StaffID:  cand.StaffID,
				RoleName: role.Name,
				Payment:  s.defaultBreakdown(role.Name),
			})
			if err != nil {
				s.skip(report, cand.StaffID, role.Name, skipReason(err))
				if errors.Is(err, assignment.ErrRoleFull) {
					break
				}
				continue
			}

			report.Assigned++
			filled++
		}
	}

	if roleQueries > 0 && roleFailures == roleQueries && report.Assigned == 0 {
		return report, fmt.Errorf("%s:%w", op, ErrMatcherUnavailable)
	}

	return report, nil
}

func (s *Service) skip(r *Report, staffID int64, roleName, reason string) {
	r.Skipped++
	r.Skips = append(r.Skips, Skip{StaffID: staffID, RoleName: roleName, Reason: reason})
}

func (s *Service) defaultBreakdown(roleName string) domain.PaymentBreakdown {
	rate, ok := s.cfg.RoleRates[roleName]
	if !ok {
		rate = s.cfg.FallbackRate
	}

	return domain.PaymentBreakdown{
		Type:       domain.PaymentHourly,
		HourlyRate: rate,
		TotalHours: s.cfg.DefaultHours,
	}
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, assignment.ErrRoleFull):
		return "role at capacity"
	case errors.Is(err, assignment.ErrStaffNotFound):
		return "unknown staff"
	case errors.Is(err, assignment.ErrRoleNotFound):
		return "role not found"
	case errors.Is(err, matching.ErrUnavailable):
		return "matching unavailable"
	default:
		return err.Error()
	}
}
