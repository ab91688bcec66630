package resume

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("resume session not found")

// Session stores one generated document keyed by a session id. Persistence
// is best-effort: generation never fails because a session could not be
// stored.
type Session struct {
	ID        uuid.UUID      `json:"id"`
	OwnerID   uuid.UUID      `json:"ownerId,omitempty"` // uuid.Nil for anonymous callers
	Outcome   Outcome        `json:"outcome"`
	Model     string         `json:"model,omitempty"`
	Document  ResumeDocument `json:"document"`
	CreatedAt time.Time      `json:"createdAt"`
}

// SessionRepository is the persistence port for generated documents.
type SessionRepository interface {
	Create(ctx context.Context, s Session) error
	GetForOwner(ctx context.Context, ownerID, id uuid.UUID) (Session, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Session, error)
}
