package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kirinyoku/crew-go/internal/domain"
)

// OutboxRepo persists notification intents in the same transaction as the
// business change that produced them. A background dispatcher drains the
// table, so notification delivery never participates in the transaction.
type OutboxRepo struct {
	pool *pgxpool.Pool
	db   DB
}

func (r *OutboxRepo) With(db DB) *OutboxRepo {
	cp := *r
	cp.db = db
	return &cp
}

func (r *OutboxRepo) handle() DB {
	if r.db != nil {
		return r.db
	}
	return r.pool
}

// Append stores one outbox message.
func (r *OutboxRepo) Append(ctx context.Context, m *domain.OutboxMessage) error {
	const op = "postgres.OutboxRepo.Append"

	db := r.handle()

	_, err := db.Exec(ctx,
		`INSERT INTO outbox (id, kind, recipient, payload, created_at)
		 VALUES ($1, $2, $3, $4, now())`,
		m.ID, m.Kind, m.Recipient, m.Payload,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}

// FetchPending returns up to limit undispatched messages, oldest first,
// locking them against concurrent dispatchers.
func (r *OutboxRepo) FetchPending(ctx context.Context, limit int) ([]domain.OutboxMessage, error) {
	const op = "postgres.OutboxRepo.FetchPending"

	db := r.handle()

	rows, err := db.Query(ctx,
		`SELECT id, kind, recipient, payload, created_at
		 FROM outbox
		 WHERE dispatched_at IS NULL
		 ORDER BY created_at
		 LIMIT $1
		 FOR UPDATE SKIP LOCKED`,
		limit,
	)
	if err != nil {
		return nil, wrapDBErr(op, err)
	}
	defer rows.Close()

	var msgs []domain.OutboxMessage
	for rows.Next() {
		var m domain.OutboxMessage
		if err := rows.Scan(&m.ID, &m.Kind, &m.Recipient, &m.Payload, &m.CreatedAt); err != nil {
			return nil, wrapDBErr(op, err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapDBErr(op, err)
	}

	return msgs, nil
}

// MarkDispatched stamps the given messages as delivered.
func (r *OutboxRepo) MarkDispatched(ctx context.Context, ids []uuid.UUID) error {
	const op = "postgres.OutboxRepo.MarkDispatched"

	if len(ids) == 0 {
		return nil
	}

	db := r.handle()

	_, err := db.Exec(ctx,
		`UPDATE outbox SET dispatched_at = now() WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return wrapDBErr(op, err)
	}

	return nil
}
