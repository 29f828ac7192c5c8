package model

import (
	"time"
)

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Not exposed
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
}
