package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceStatus classifies how much of the required fee a student has paid.
type BalanceStatus string

const (
	BalanceUnpaid  BalanceStatus = "UNPAID"
	BalancePartial BalanceStatus = "PARTIAL"
	BalancePaid    BalanceStatus = "PAID"
)

// StudentFeeBalance is a derived view of the ledger for one (student, term, year)
// key. It is always recomputed from the fee structure and the verified payments,
// never incrementally patched.
type StudentFeeBalance struct {
	StudentID        string          `json:"studentID"`
	ClassID          string          `json:"classID"`
	Term             string          `json:"term"`
	AcademicYear     string          `json:"academicYear"`
	TotalFeeRequired decimal.Decimal `json:"totalFeeRequired"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	Balance          decimal.Decimal `json:"balance"` // Required minus paid; negative on over-payment
	Status           BalanceStatus   `json:"status"`
	ComputedAt       time.Time       `json:"computedAt"`
}

// ClassifyBalance derives the balance status from the paid and required totals.
// The boundary is inclusive: totalPaid equal to the required fee counts as paid.
func ClassifyBalance(totalPaid, totalFeeRequired decimal.Decimal) BalanceStatus {
	switch {
	case totalPaid.IsZero():
		return BalanceUnpaid
	case totalPaid.GreaterThanOrEqual(totalFeeRequired):
		return BalancePaid
	default:
		return BalancePartial
	}
}
