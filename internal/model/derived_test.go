package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSaleTicketPerUnit(t *testing.T) {
	sale := Sale{
		UnitsSold:     2,
		ContractValue: decimal.RequireFromString("500000.00"),
	}
	assert.True(t, sale.TicketPerUnit().Equal(decimal.RequireFromString("250000.00")))

	sale.UnitsSold = 0
	assert.True(t, sale.TicketPerUnit().IsZero())
}

func TestPurchaseItemTotal(t *testing.T) {
	item := PurchaseItem{
		Quantity: 3,
		UnitCost: decimal.RequireFromString("1250.50"),
	}
	assert.True(t, item.Total().Equal(decimal.RequireFromString("3751.50")))
}

func TestPlannedTaskCostVariance(t *testing.T) {
	task := PlannedTask{
		PlannedCost: decimal.RequireFromString("80000.00"),
		ActualCost:  decimal.RequireFromString("85000.00"),
	}
	assert.True(t, task.CostVariance().Equal(decimal.RequireFromString("5000.00")))

	under := PlannedTask{
		PlannedCost: decimal.RequireFromString("80000.00"),
		ActualCost:  decimal.RequireFromString("70000.00"),
	}
	assert.True(t, under.CostVariance().Equal(decimal.RequireFromString("-10000.00")))
}
