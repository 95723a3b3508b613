package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsApproved   bool      `json:"isApproved"`
	CreatedAt    time.Time `json:"created_at"`
}
