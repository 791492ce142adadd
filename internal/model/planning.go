package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlanningCategory struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

type PlannedTask struct {
	ID            uuid.UUID
	DevelopmentID uuid.UUID
	CategoryID    *uuid.UUID
	Name          string
	PlannedStart  time.Time
	PlannedEnd    time.Time
	ActualEnd     *time.Time
	PlannedCost   decimal.Decimal
	ActualCost    decimal.Decimal
	CreatedAt     time.Time
}

// CostVariance is actual cost minus planned cost; positive means over budget.
func (t PlannedTask) CostVariance() decimal.Decimal {
	return t.ActualCost.Sub(t.PlannedCost)
}
