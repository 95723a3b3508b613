package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxSermons is the business cap on stored sermons, enforced at creation.
const MaxSermons = 10

type Sermon struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Scripture string    `json:"scripture"`
	Speaker   string    `json:"speaker"`
	Date      time.Time `json:"date"`
	MP3URL    string    `json:"mp3"`
	CreatedAt time.Time `json:"created_at"`
}
