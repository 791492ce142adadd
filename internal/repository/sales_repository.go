package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/imobops/backoffice/internal/model"
)

type SalesRepository struct {
	db *gorm.DB
}

func NewSalesRepository(db *gorm.DB) *SalesRepository {
	return &SalesRepository{db: db}
}

type SalesTotalsRow struct {
	TotalValue decimal.Decimal
	TotalUnits int64
	AvgValue   decimal.Decimal
}

type BrokerDevelopmentSalesRow struct {
	BrokerID        uuid.UUID
	BrokerName      string
	DevelopmentID   uuid.UUID
	DevelopmentName string
	TotalValue      decimal.Decimal
	TotalUnits      int64
}

type MonthlySalesRow struct {
	Month      time.Time
	TotalValue decimal.Decimal
	TotalUnits int64
}

type DevelopmentTotalRow struct {
	DevelopmentID uuid.UUID
	Total         decimal.Decimal
}

func (r *SalesRepository) Totals(ctx context.Context) (SalesTotalsRow, error) {
	var row SalesTotalsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(contract_value), 0) AS total_value,
			COALESCE(SUM(units_sold), 0) AS total_units,
			COALESCE(AVG(contract_value), 0) AS avg_value
		FROM sales
	`).Scan(&row).Error
	if err != nil {
		return SalesTotalsRow{}, err
	}
	return row, nil
}

func (r *SalesRepository) TotalsByBrokerDevelopment(ctx context.Context) ([]BrokerDevelopmentSalesRow, error) {
	var rows []BrokerDevelopmentSalesRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.broker_id,
			b.name AS broker_name,
			s.development_id,
			d.name AS development_name,
			COALESCE(SUM(s.contract_value), 0) AS total_value,
			COALESCE(SUM(s.units_sold), 0) AS total_units
		FROM sales s
		JOIN brokers b ON b.id = s.broker_id
		JOIN developments d ON d.id = s.development_id
		GROUP BY s.broker_id, b.name, s.development_id, d.name
		ORDER BY total_value DESC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SalesRepository) MonthlyTotals(ctx context.Context) ([]MonthlySalesRow, error) {
	var rows []MonthlySalesRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			date_trunc('month', sale_date) AS month,
			COALESCE(SUM(contract_value), 0) AS total_value,
			COALESCE(SUM(units_sold), 0) AS total_units
		FROM sales
		GROUP BY date_trunc('month', sale_date)
		ORDER BY month ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SalesRepository) TotalsByDevelopment(ctx context.Context) ([]DevelopmentTotalRow, error) {
	var rows []DevelopmentTotalRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			development_id,
			COALESCE(SUM(contract_value), 0) AS total
		FROM sales
		GROUP BY development_id
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SalesRepository) ListDevelopments(ctx context.Context) ([]model.Development, error) {
	var developments []model.Development
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, city, launch_date, created_at
		FROM developments
		ORDER BY name ASC
	`).Scan(&developments).Error
	if err != nil {
		return nil, err
	}
	return developments, nil
}
