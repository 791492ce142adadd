package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/imobops/backoffice/internal/model"
)

// brokerMissingLabel groups receivables whose sale has no broker on record.
const brokerMissingLabel = "Não informado"

type ReceivablesRepository struct {
	db *gorm.DB
}

func NewReceivablesRepository(db *gorm.DB) *ReceivablesRepository {
	return &ReceivablesRepository{db: db}
}

type ReceivablesTotalsRow struct {
	TotalAmount decimal.Decimal
	TotalPaid   decimal.Decimal
}

type BrokerPortfolioRow struct {
	BrokerName  string
	TotalAmount decimal.Decimal
	TotalPaid   decimal.Decimal
}

type BrokerDelinquencyRow struct {
	BrokerName string
	Total      decimal.Decimal
}

func (r *ReceivablesRepository) Totals(ctx context.Context) (ReceivablesTotalsRow, error) {
	var row ReceivablesTotalsRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(amount), 0) AS total_amount,
			COALESCE(SUM(paid_amount), 0) AS total_paid
		FROM installments
	`).Scan(&row).Error
	if err != nil {
		return ReceivablesTotalsRow{}, err
	}
	return row, nil
}

// ListUnpaid returns every installment whose status is not paid,
// ordered by due date for stable aging output.
func (r *ReceivablesRepository) ListUnpaid(ctx context.Context) ([]model.Installment, error) {
	var installments []model.Installment
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, sale_id, due_date, amount, paid_date, paid_amount, status, created_at
		FROM installments
		WHERE status <> ?
		ORDER BY due_date ASC NULLS LAST
	`, model.InstallmentStatusPaid).Scan(&installments).Error
	if err != nil {
		return nil, err
	}
	return installments, nil
}

func (r *ReceivablesRepository) PortfolioByBroker(ctx context.Context) ([]BrokerPortfolioRow, error) {
	var rows []BrokerPortfolioRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(b.name, ?) AS broker_name,
			COALESCE(SUM(i.amount), 0) AS total_amount,
			COALESCE(SUM(i.paid_amount), 0) AS total_paid
		FROM installments i
		JOIN sales s ON s.id = i.sale_id
		LEFT JOIN brokers b ON b.id = s.broker_id
		GROUP BY b.name
		ORDER BY broker_name ASC
	`, brokerMissingLabel).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ReceivablesRepository) DelinquentByBroker(ctx context.Context) ([]BrokerDelinquencyRow, error) {
	var rows []BrokerDelinquencyRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(b.name, ?) AS broker_name,
			COALESCE(SUM(i.amount - i.paid_amount), 0) AS total
		FROM installments i
		JOIN sales s ON s.id = i.sale_id
		LEFT JOIN brokers b ON b.id = s.broker_id
		WHERE i.status <> ?
		GROUP BY b.name
	`, brokerMissingLabel, model.InstallmentStatusPaid).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
