package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InstallmentStatus string

const (
	InstallmentStatusOpen         InstallmentStatus = "aberto"
	InstallmentStatusPaid         InstallmentStatus = "pago"
	InstallmentStatusOverdue      InstallmentStatus = "atrasado"
	InstallmentStatusRenegotiated InstallmentStatus = "renegociado"
)

type Installment struct {
	ID         uuid.UUID
	SaleID     uuid.UUID
	DueDate    *time.Time
	Amount     decimal.Decimal
	PaidDate   *time.Time
	PaidAmount decimal.Decimal
	Status     InstallmentStatus
	CreatedAt  time.Time
}

// Balance is the amount still owed on the installment.
func (i Installment) Balance() decimal.Decimal {
	return i.Amount.Sub(i.PaidAmount)
}

// Overdue reports whether the installment is formally late.
func (i Installment) Overdue() bool {
	return i.Status == InstallmentStatusOverdue || i.Status == InstallmentStatusRenegotiated
}

// DaysLate counts calendar days past the due date as of the given day,
// never negative. Installments without a due date are never late.
func (i Installment) DaysLate(asOf time.Time) int {
	if i.DueDate == nil {
		return 0
	}
	days := int(asOf.Sub(*i.DueDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// DaysOverdue is DaysLate gated on the overdue statuses.
func (i Installment) DaysOverdue(asOf time.Time) int {
	if !i.Overdue() {
		return 0
	}
	return i.DaysLate(asOf)
}
