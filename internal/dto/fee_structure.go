package dto

import (
	"time"

	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertFeeStructureRequest defines the data needed to create or replace the
// fee structure for a (class, term, year) key. Amounts are whole currency units.
type UpsertFeeStructureRequest struct {
	ClassID         string          `json:"classID" binding:"required"`
	Term            string          `json:"term" binding:"required"`
	AcademicYear    string          `json:"academicYear" binding:"required"`
	TuitionFee      decimal.Decimal `json:"tuitionFee"`
	DevelopmentLevy decimal.Decimal `json:"developmentLevy"`
	ExamFee         decimal.Decimal `json:"examFee"`
	BooksFee        decimal.Decimal `json:"booksFee"`
	UniformFee      decimal.Decimal `json:"uniformFee"`
	TransportFee    decimal.Decimal `json:"transportFee"`
	SportsFee       decimal.Decimal `json:"sportsFee"`
}

// FeeStructureResponse defines the data returned for a fee structure.
type FeeStructureResponse struct {
	FeeStructureID  string          `json:"feeStructureID"`
	ClassID         string          `json:"classID"`
	Term            string          `json:"term"`
	AcademicYear    string          `json:"academicYear"`
	TuitionFee      decimal.Decimal `json:"tuitionFee"`
	DevelopmentLevy decimal.Decimal `json:"developmentLevy"`
	ExamFee         decimal.Decimal `json:"examFee"`
	BooksFee        decimal.Decimal `json:"booksFee"`
	UniformFee      decimal.Decimal `json:"uniformFee"`
	TransportFee    decimal.Decimal `json:"transportFee"`
	SportsFee       decimal.Decimal `json:"sportsFee"`
	TotalFee        decimal.Decimal `json:"totalFee"`
	CreatedAt       time.Time       `json:"createdAt"`
	CreatedBy       string          `json:"createdBy"`
	LastUpdatedAt   time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy   string          `json:"lastUpdatedBy"`
}

// ToFeeStructureResponse converts a domain.FeeStructure to its response DTO.
func ToFeeStructureResponse(fs *domain.FeeStructure) FeeStructureResponse {
	return FeeStructureResponse{
		FeeStructureID:  fs.FeeStructureID,
		ClassID:         fs.ClassID,
		Term:            fs.Term,
		AcademicYear:    fs.AcademicYear,
		TuitionFee:      fs.TuitionFee,
		DevelopmentLevy: fs.DevelopmentLevy,
		ExamFee:         fs.ExamFee,
		BooksFee:        fs.BooksFee,
		UniformFee:      fs.UniformFee,
		TransportFee:    fs.TransportFee,
		SportsFee:       fs.SportsFee,
		TotalFee:        fs.TotalFee,
		CreatedAt:       fs.CreatedAt,
		CreatedBy:       fs.CreatedBy,
		LastUpdatedAt:   fs.LastUpdatedAt,
		LastUpdatedBy:   fs.LastUpdatedBy,
	}
}

// ToFeeStructureResponses converts a slice of domain.FeeStructure to response DTOs.
func ToFeeStructureResponses(structures []domain.FeeStructure) []FeeStructureResponse {
	res := make([]FeeStructureResponse, len(structures))
	for i := range structures {
		res[i] = ToFeeStructureResponse(&structures[i])
	}
	return res
}
