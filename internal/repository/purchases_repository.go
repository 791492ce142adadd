package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PurchasesRepository struct {
	db *gorm.DB
}

func NewPurchasesRepository(db *gorm.DB) *PurchasesRepository {
	return &PurchasesRepository{db: db}
}

type PurchasesTotalRow struct {
	Total decimal.Decimal
}

type DevelopmentCostRow struct {
	DevelopmentID   uuid.UUID
	DevelopmentName string
	Total           decimal.Decimal
}

type SupplierCostRow struct {
	SupplierID   uuid.UUID
	SupplierName string
	Total        decimal.Decimal
}

func (r *PurchasesRepository) Total(ctx context.Context) (decimal.Decimal, error) {
	var row PurchasesTotalRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total_value), 0) AS total FROM purchase_orders
	`).Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

func (r *PurchasesRepository) TotalsByDevelopment(ctx context.Context) ([]DevelopmentCostRow, error) {
	var rows []DevelopmentCostRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			po.development_id,
			d.name AS development_name,
			COALESCE(SUM(po.total_value), 0) AS total
		FROM purchase_orders po
		JOIN developments d ON d.id = po.development_id
		GROUP BY po.development_id, d.name
		ORDER BY development_name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *PurchasesRepository) TotalsBySupplier(ctx context.Context) ([]SupplierCostRow, error) {
	var rows []SupplierCostRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			po.supplier_id,
			f.name AS supplier_name,
			COALESCE(SUM(po.total_value), 0) AS total
		FROM purchase_orders po
		JOIN suppliers f ON f.id = po.supplier_id
		GROUP BY po.supplier_id, f.name
		ORDER BY total DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
