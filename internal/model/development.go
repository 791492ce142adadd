package model

import (
	"time"

	"github.com/google/uuid"
)

type Development struct {
	ID         uuid.UUID
	Name       string
	City       string
	LaunchDate *time.Time
	CreatedAt  time.Time
}
