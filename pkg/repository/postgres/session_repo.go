package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/manan6/intelli-resume/pkg/resume"
)

// SessionRepository stores generated resume documents as JSONB keyed by
// session id.
type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) (*SessionRepository, error) {
	r := &SessionRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *SessionRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS resume_sessions (
	id UUID PRIMARY KEY,
	owner_id UUID,
	outcome TEXT NOT NULL,
	model TEXT NOT NULL DEFAULT '',
	document JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS resume_sessions_owner_idx ON resume_sessions (owner_id, created_at DESC);
`)
	return err
}

func (r *SessionRepository) Create(ctx context.Context, s resume.Session) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	doc, err := json.Marshal(s.Document)
	if err != nil {
		return err
	}
	var owner any
	if s.OwnerID != uuid.Nil {
		owner = s.OwnerID
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO resume_sessions (id, owner_id, outcome, model, document, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, s.ID, owner, string(s.Outcome), s.Model, doc, s.CreatedAt)
	return err
}

func (r *SessionRepository) GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (resume.Session, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, outcome, model, document, created_at
FROM resume_sessions WHERE id = $1 AND owner_id = $2
`, id, ownerID)
	return scanSession(row)
}

func (r *SessionRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]resume.Session, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, outcome, model, document, created_at
FROM resume_sessions WHERE owner_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []resume.Session{}
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func scanSession(row pgx.Row) (resume.Session, error) {
	var s resume.Session
	var owner *uuid.UUID
	var outcome string
	var doc []byte
	var createdAt time.Time
	if err := row.Scan(&s.ID, &owner, &outcome, &s.Model, &doc, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Session{}, resume.ErrSessionNotFound
		}
		return resume.Session{}, err
	}
	if owner != nil {
		s.OwnerID = *owner
	}
	s.Outcome = resume.Outcome(outcome)
	s.CreatedAt = createdAt.UTC()
	if err := json.Unmarshal(doc, &s.Document); err != nil {
		return resume.Session{}, err
	}
	return s, nil
}
