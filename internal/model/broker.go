package model

import (
	"time"

	"github.com/google/uuid"
)

type Broker struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Phone     string
	Active    bool
	CreatedAt time.Time
}
