package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/crew-go/internal/domain"
)

// StaffRepo reads the staff directory. The engine treats staff records as
// reference data; the only write path is the admin seeding endpoint.
type StaffRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *StaffRepo) With(db DB) *StaffRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *StaffRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

func (r *StaffRepo) Get(ctx context.Context, id int64) (*domain.Staff, error) {
	const op = "postgres.StaffRepo.Get"

	db := r.handle()

	var s domain.Staff
	err := db.QueryRow(ctx,
		`SELECT id, name, role_tag, availability, base_rate
		 FROM staff WHERE id = $1`,
		id,
	).Scan(&s.ID, &s.Name, &s.RoleTag, &s.Availability, &s.BaseRate)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &s, nil
}

func (r *StaffRepo) List(ctx context.Context) ([]domain.Staff, error) {
	const op = "postgres.StaffRepo.List"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, name, role_tag, availability, base_rate
		 FROM staff ORDER BY id`,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}
	defer rows.Close()

	var list []domain.Staff
	for rows.Next() {
		var s domain.Staff
		if err := rows.Scan(&s.ID, &s.Name, &s.RoleTag, &s.Availability, &s.BaseRate); err != nil {
			return nil, wrapDBErr(op, err)
		}
		list = append(list, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return list, nil
}

func (r *StaffRepo) Insert(ctx context.Context, s *domain.Staff) (int64, error) {
	const op = "postgres.StaffRepo.Insert"

	db := r.handle()

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO staff (name, role_tag, availability, base_rate)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		s.Name, s.RoleTag, s.Availability, s.BaseRate,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}
