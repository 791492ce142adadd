package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SaleStatus string

const (
	SaleStatusActive    SaleStatus = "ativa"
	SaleStatusCancelled SaleStatus = "cancelada"
	SaleStatusCompleted SaleStatus = "concluida"
)

type Sale struct {
	ID            uuid.UUID
	BrokerID      uuid.UUID
	DevelopmentID uuid.UUID
	ClientName    string
	SaleDate      time.Time
	UnitsSold     int64
	ContractValue decimal.Decimal
	Status        SaleStatus
	CreatedAt     time.Time
}

// TicketPerUnit is the contract value spread over the units sold.
func (s Sale) TicketPerUnit() decimal.Decimal {
	if s.UnitsSold == 0 {
		return decimal.Zero
	}
	return s.ContractValue.Div(decimal.NewFromInt(s.UnitsSold))
}
