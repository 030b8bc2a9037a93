package dto

import (
	"time"

	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceQueryParams identify the (term, year) key a balance is requested for.
type BalanceQueryParams struct {
	Term         string `form:"term" binding:"required"`
	AcademicYear string `form:"academicYear" binding:"required"`
}

// StudentFeeBalanceResponse defines the derived balance view returned to callers.
type StudentFeeBalanceResponse struct {
	StudentID        string          `json:"studentID"`
	ClassID          string          `json:"classID"`
	Term             string          `json:"term"`
	AcademicYear     string          `json:"academicYear"`
	TotalFeeRequired decimal.Decimal `json:"totalFeeRequired"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	Balance          decimal.Decimal `json:"balance"`
	Status           string          `json:"status"`
	ComputedAt       time.Time       `json:"computedAt"`
}

// ToStudentFeeBalanceResponse converts a domain.StudentFeeBalance to its response DTO.
func ToStudentFeeBalanceResponse(b *domain.StudentFeeBalance) StudentFeeBalanceResponse {
	return StudentFeeBalanceResponse{
		StudentID:        b.StudentID,
		ClassID:          b.ClassID,
		Term:             b.Term,
		AcademicYear:     b.AcademicYear,
		TotalFeeRequired: b.TotalFeeRequired,
		TotalPaid:        b.TotalPaid,
		Balance:          b.Balance,
		Status:           string(b.Status),
		ComputedAt:       b.ComputedAt,
	}
}
