package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PlanningRepository struct {
	db *gorm.DB
}

func NewPlanningRepository(db *gorm.DB) *PlanningRepository {
	return &PlanningRepository{db: db}
}

type DevelopmentPlanningRow struct {
	DevelopmentID   uuid.UUID
	DevelopmentName string
	PlannedCost     decimal.Decimal
	ActualCost      decimal.Decimal
}

func (r *PlanningRepository) CostsByDevelopment(ctx context.Context) ([]DevelopmentPlanningRow, error) {
	var rows []DevelopmentPlanningRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			t.development_id,
			d.name AS development_name,
			COALESCE(SUM(t.planned_cost), 0) AS planned_cost,
			COALESCE(SUM(t.actual_cost), 0) AS actual_cost
		FROM planned_tasks t
		JOIN developments d ON d.id = t.development_id
		GROUP BY t.development_id, d.name
		ORDER BY development_name ASC
	`).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
