package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/kirinyoku/crew-go/internal/repository"
)

type EventRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *EventRepo) With(db DB) *EventRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *EventRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create inserts an event together with its seeded role list and returns the
// new event ID. Role order is preserved via an explicit position column.
func (r *EventRepo) Create(ctx context.Context, e *domain.Event) (int64, error) {
	const op = "postgres.EventRepo.Create"

	db := r.handle()

	budget, err := json.Marshal(e.Budget)
	if err != nil {
		return 0, fmt.Errorf("%s:%w", op, err)
	}

	var id int64
	err = db.QueryRow(ctx,
		`INSERT INTO events (title, location, description, starts_at, ends_at, status, budget, explicit_revenue, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		 RETURNING id`,
		e.Title, e.Location, e.Description, e.StartsAt, e.EndsAt, e.Status, budget, e.ExplicitRevenue,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	for i, role := range e.Roles {
		_, err := db.Exec(ctx,
			`INSERT INTO event_roles (event_id, position, name, required, filled)
			 VALUES ($1, $2, $3, $4, 0)`,
			id, i, role.Name, role.Count,
		)
		if err != nil {
			return 0, wrapDBErr(op, err)
		}
	}

	return id, nil
}

// Get loads an event with its roles in seeded order.
func (r *EventRepo) Get(ctx context.Context, id int64) (*domain.Event, error) {
	const op = "postgres.EventRepo.Get"

	db := r.handle()

	var (
		e         domain.Event
		budgetRaw []byte
	)
	err := db.QueryRow(ctx,
		`SELECT id, title, location, description, starts_at, ends_at, status, budget, explicit_revenue, created_at
		 FROM events WHERE id = $1`,
		id,
	).Scan(&e.ID, &e.Title, &e.Location, &e.Description, &e.StartsAt, &e.EndsAt, &e.Status, &budgetRaw, &e.ExplicitRevenue, &e.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	if len(budgetRaw) > 0 {
		if err := json.Unmarshal(budgetRaw, &e.Budget); err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
	}

	rows, err := db.Query(ctx,
		`SELECT name, required, filled
		 FROM event_roles WHERE event_id = $1
		 ORDER BY position`,
		id,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.Name, &role.Count, &role.Filled); err != nil {
			return nil, wrapDBErr(op, err)
		}
		e.Roles = append(e.Roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &e, nil
}

// LockForFill pins the event row for the duration of the surrounding
// transaction so role fills against one event are serialized.
func (r *EventRepo) LockForFill(ctx context.Context, id int64) error {
	const op = "postgres.EventRepo.LockForFill"

	db := r.handle()

	var got int64
	err := db.QueryRow(ctx,
		`SELECT id FROM events WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&got)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// FillRole increments the filled counter of the named role, guarded so the
// counter can never pass the requirement. Distinguishes a missing role from a
// full one.
func (r *EventRepo) FillRole(ctx context.Context, eventID int64, roleName string) error {
	const op = "postgres.EventRepo.FillRole"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE event_roles SET filled = filled + 1
		 WHERE event_id = $1 AND name = $2 AND filled < required`,
		eventID, roleName,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	err = db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM event_roles WHERE event_id = $1 AND name = $2)`,
		eventID, roleName,
	).Scan(&exists)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if !exists {
		return fmt.Errorf("%s:%w", op, repository.ErrRoleNotFound)
	}

	return fmt.Errorf("%s:%w", op, repository.ErrRoleFull)
}

// UpdateStatus moves the event to the given status after re-checking the
// transition against the current row.
func (r *EventRepo) UpdateStatus(ctx context.Context, id int64, next domain.EventStatus) error {
	const op = "postgres.EventRepo.UpdateStatus"

	db := r.handle()

	var current domain.EventStatus
	err := db.QueryRow(ctx,
		`SELECT status FROM events WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&current)
	if err != nil {
		return wrapDBErr(op, err)
	}

	e := domain.Event{Status: current}
	if !e.CanTransition(next) {
		return fmt.Errorf("%s:%w", op, repository.ErrInvalidTransition)
	}

	_, err = db.Exec(ctx,
		`UPDATE events SET status = $2 WHERE id = $1`,
		id, next,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Delete removes an event and, through cascading foreign keys, its
// assignments and shifts.
func (r *EventRepo) Delete(ctx context.Context, id int64) error {
	const op = "postgres.EventRepo.Delete"

	db := r.handle()

	tag, err := db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}
