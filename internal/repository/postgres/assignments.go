package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/crew-go/internal/domain"
)

type AssignmentRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *AssignmentRepo) With(db DB) *AssignmentRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *AssignmentRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Insert stores a fully validated assignment. Capacity accounting is the
// EventRepo's FillRole; both must run inside one transaction.
func (r *AssignmentRepo) Insert(ctx context.Context, a *domain.Assignment) error {
	const op = "postgres.AssignmentRepo.Insert"

	db := r.handle()

	paymentRaw, err := json.Marshal(a.Payment)
	if err != nil {
		return fmt.Errorf("%s:%w", op, err)
	}

	_, err = db.Exec(ctx,
		`INSERT INTO assignments (id, event_id, staff_id, role_name, status, payment, total_pay, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, now())`,
		a.ID, a.EventID, a.StaffID, a.Role, a.Status, paymentRaw, a.TotalPay,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// Get loads one assignment by ID.
func (r *AssignmentRepo) Get(ctx context.Context, id string) (*domain.Assignment, error) {
	const op = "postgres.AssignmentRepo.Get"

	db := r.handle()

	var (
		a          domain.Assignment
		paymentRaw []byte
	)
	err := db.QueryRow(ctx,
		`SELECT id, event_id, staff_id, role_name, status, payment, total_pay, created_at
		 FROM assignments WHERE id = $1`,
		id,
	).Scan(&a.ID, &a.EventID, &a.StaffID, &a.Role, &a.Status, &paymentRaw, &a.TotalPay, &a.CreatedAt)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	if len(paymentRaw) > 0 {
		if err := json.Unmarshal(paymentRaw, &a.Payment); err != nil {
			return nil, fmt.Errorf("%s:%w", op, err)
		}
	}

	return &a, nil
}

// ListByEvent returns an event's assignments, oldest first.
func (r *AssignmentRepo) ListByEvent(ctx context.Context, eventID int64) ([]domain.Assignment, error) {
	const op = "postgres.AssignmentRepo.ListByEvent"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, event_id, staff_id, role_name, status, payment, total_pay, created_at
		 FROM assignments WHERE event_id = $1
		 ORDER BY created_at`,
		eventID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}
	defer rows.Close()

	var list []domain.Assignment
	for rows.Next() {
		var (
			a          domain.Assignment
			paymentRaw []byte
		)
		if err := rows.Scan(&a.ID, &a.EventID, &a.StaffID, &a.Role, &a.Status, &paymentRaw, &a.TotalPay, &a.CreatedAt); err != nil {
			return nil, wrapDBErr(op, err)
		}
		if len(paymentRaw) > 0 {
			if err := json.Unmarshal(paymentRaw, &a.Payment); err != nil {
				return nil, fmt.Errorf("%s:%w", op, err)
			}
		}
		list = append(list, a)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return list, nil
}

// ExistsForStaff reports whether the staff member already holds an assignment
// on the event. Used by auto-assign to skip duplicate candidates.
func (r *AssignmentRepo) ExistsForStaff(ctx context.Context, eventID, staffID int64) (bool, error) {
	const op = "postgres.AssignmentRepo.ExistsForStaff"

	db := r.handle()

	var exists bool
	err := db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM assignments WHERE event_id = $1 AND staff_id = $2)`,
		eventID, staffID,
	).Scan(&exists)
	if err != nil {
		return false, wrapDBErr(op, err)
	}

	return exists, nil
}
