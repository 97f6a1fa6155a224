package entity

import (
	"time"

	"github.com/google/uuid"
)

// Todo is a task owned by exactly one user.
type Todo struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"` // Optional free text; nil when not provided.
	Completed   bool      `json:"completed"`
	UserID      uuid.UUID `json:"user_id"` // Owner, immutable after creation.
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// IsOwnedBy reports whether userID is the owner of the todo.
func (t *Todo) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}
