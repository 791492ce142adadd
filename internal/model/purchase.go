package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PurchaseCategory string

const (
	PurchaseCategoryMaterials PurchaseCategory = "materiais"
	PurchaseCategoryServices  PurchaseCategory = "servicos"
	PurchaseCategoryEquipment PurchaseCategory = "equipamentos"
	PurchaseCategoryOther     PurchaseCategory = "outros"
)

type PurchaseOrder struct {
	ID            uuid.UUID
	DevelopmentID uuid.UUID
	SupplierID    uuid.UUID
	OrderDate     time.Time
	Category      PurchaseCategory
	TotalValue    decimal.Decimal
	CreatedAt     time.Time
}

type PurchaseItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	Description string
	Quantity    int64
	UnitCost    decimal.Decimal
	CreatedAt   time.Time
}

// Total is quantity times unit cost.
func (i PurchaseItem) Total() decimal.Decimal {
	return i.UnitCost.Mul(decimal.NewFromInt(i.Quantity))
}
