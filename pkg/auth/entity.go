package auth

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account. Accounts exist only to own stored resume
// sessions; generation itself works without one.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
