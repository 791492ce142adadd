package model

import (
	"time"

	"github.com/google/uuid"
)

type Supplier struct {
	ID        uuid.UUID
	Name      string
	TaxID     string
	Contact   string
	Email     string
	CreatedAt time.Time
}
