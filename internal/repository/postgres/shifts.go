package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/kirinyoku/crew-go/internal/repository"
)

type ShiftRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *ShiftRepo) With(db DB) *ShiftRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *ShiftRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *ShiftRepo) Insert(ctx context.Context, s *domain.Shift) error {
	const op = "postgres.ShiftRepo.Insert"

	db := r.handle()

	_, err := db.Exec(ctx,
		`INSERT INTO shifts (id, assignment_id, shift_date, start_time, end_time, role_name, wage, instructions)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.AssignmentID, s.Date, s.StartTime, s.EndTime, s.Role, s.Wage, s.Instructions,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

func (r *ShiftRepo) Update(ctx context.Context, s *domain.Shift) error {
	const op = "postgres.ShiftRepo.Update"

	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE shifts
		 SET shift_date = $2, start_time = $3, end_time = $4, role_name = $5, wage = $6, instructions = $7
		 WHERE id = $1`,
		s.ID, s.Date, s.StartTime, s.EndTime, s.Role, s.Wage, s.Instructions,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return nil
}

func (r *ShiftRepo) Get(ctx context.Context, id string) (*domain.Shift, error) {
	const op = "postgres.ShiftRepo.Get"

	db := r.handle()

	var s domain.Shift
	err := db.QueryRow(ctx,
		`SELECT id, assignment_id, shift_date, start_time, end_time, role_name, wage, instructions
		 FROM shifts WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.AssignmentID, &s.Date, &s.StartTime, &s.EndTime, &s.Role, &s.Wage, &s.Instructions)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

func (r *ShiftRepo) ListByAssignment(ctx context.Context, assignmentID string) ([]domain.Shift, error) {
	const op = "postgres.ShiftRepo.ListByAssignment"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, assignment_id, shift_date, start_time, end_time, role_name, wage, instructions
		 FROM shifts WHERE assignment_id = $1
		 ORDER BY shift_date, start_time`,
		assignmentID,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}
	defer rows.Close()

	var list []domain.Shift
	for rows.Next() {
		var s domain.Shift
		if err := rows.Scan(&s.ID, &s.AssignmentID, &s.Date, &s.StartTime, &s.EndTime, &s.Role, &s.Wage, &s.Instructions); err != nil {
			return nil, wrapDBErr(op, err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return list, nil
}
