package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/crew-go/internal/domain"
	"github.com/kirinyoku/crew-go/internal/repository"
)

type BookingRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *BookingRepo) With(db DB) *BookingRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *BookingRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Create records an inbound staffing request in the pending state.
func (r *BookingRepo) Create(ctx context.Context, b *domain.Booking) (int64, error) {
	const op = "postgres.BookingRepo.Create"

	db := r.handle()

	var id int64
	err := db.QueryRow(ctx,
		`INSERT INTO bookings
		   (event_type, location, event_date, duration, budget_note,
		    contact_name, contact_email, contact_phone, venue, special_requirements,
		    servers, hosts, other_staff, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, now())
		 RETURNING id`,
		b.EventType, b.Location, b.Date, b.Duration, b.BudgetNote,
		b.Contact.Name, b.Contact.Email, b.Contact.Phone, b.Venue, b.SpecialRequirements,
		b.Staff.Servers, b.Staff.Hosts, b.Staff.Other, domain.BookingPending,
	).Scan(&id)
	if err != nil {
		return 0, wrapDBErr(op, err)
	}

	return id, nil
}

// Get loads one booking by ID.
func (r *BookingRepo) Get(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.get(ctx, id, false)
}

// GetForDecision loads the booking and locks its row so two operators cannot
// decide it concurrently.
func (r *BookingRepo) GetForDecision(ctx context.Context, id int64) (*domain.Booking, error) {
	const op = "postgres.BookingRepo.GetForDecision"

	b, err := r.get(ctx, id, true)
	if err != nil {
		return nil, fmt.Errorf("%s:%w", op, err)
	}
	return b, nil
}

func (r *BookingRepo) get(ctx context.Context, id int64, forUpdate bool) (*domain.Booking, error) {
	const op = "postgres.BookingRepo.get"

	db := r.handle()

	q := `SELECT id, event_type, location, event_date, duration, budget_note,
	             contact_name, contact_email, contact_phone, venue, special_requirements,
	             servers, hosts, other_staff, status, converted_event_id, created_at
	      FROM bookings WHERE id = $1`
	if forUpdate {
		q += ` FOR UPDATE`
	}

	var b domain.Booking
	err := db.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.EventType, &b.Location, &b.Date, &b.Duration, &b.BudgetNote,
		&b.Contact.Name, &b.Contact.Email, &b.Contact.Phone, &b.Venue, &b.SpecialRequirements,
		&b.Staff.Servers, &b.Staff.Hosts, &b.Staff.Other, &b.Status, &b.ConvertedEventID, &b.CreatedAt,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}

	return &b, nil
}

// MarkConverted moves a decidable booking straight to converted, recording the
// event it produced. The status guard makes double decisions impossible even
// if the caller skipped GetForDecision.
func (r *BookingRepo) MarkConverted(ctx context.Context, id, eventID int64) error {
	const op = "postgres.BookingRepo.MarkConverted"

	return r.decide(ctx, op, id, domain.BookingConverted, &eventID)
}

// MarkRejected terminates a decidable booking without creating an event.
func (r *BookingRepo) MarkRejected(ctx context.Context, id int64) error {
	const op = "postgres.BookingRepo.MarkRejected"

	return r.decide(ctx, op, id, domain.BookingRejected, nil)
}

func (r *BookingRepo) decide(
	ctx context.Context,
	op string,
	id int64,
	status domain.BookingStatus,
	eventID *int64,
) error {
	db := r.handle()

	tag, err := db.Exec(ctx,
		`UPDATE bookings SET status = $2, converted_event_id = $3
		 WHERE id = $1 AND status IN ($4, $5)`,
		id, status, eventID, domain.BookingPending, domain.BookingUnderReview,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	err = db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`,
		id,
	).Scan(&exists)
	if err != nil {
		return wrapDBErr(op, err)
	}
	if !exists {
		return fmt.Errorf("%s:%w", op, repository.ErrNotFound)
	}

	return fmt.Errorf("%s:%w", op, repository.ErrInvalidTransition)
}
