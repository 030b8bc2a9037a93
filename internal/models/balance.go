package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// StudentFeeBalance is the DB representation of the derived balance cache.
// Unique key: (student_id, term, academic_year). Always fully replaced on recompute.
type StudentFeeBalance struct {
	StudentID        string          `db:"student_id"`
	ClassID          string          `db:"class_id"`
	Term             string          `db:"term"`
	AcademicYear     string          `db:"academic_year"`
	TotalFeeRequired decimal.Decimal `db:"total_fee_required"`
	TotalPaid        decimal.Decimal `db:"total_paid"`
	Balance          decimal.Decimal `db:"balance"`
	Status           string          `db:"status"`
	ComputedAt       time.Time       `db:"computed_at"`
}
