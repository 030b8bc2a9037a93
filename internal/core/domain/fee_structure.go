package domain

import (
	"github.com/shopspring/decimal"
)

// FeeStructure defines the fee composition for one (class, term, academic year) key.
// Exactly one structure exists per key; writing a second one for the same key
// replaces the record as a whole so TotalFee can never drift from its inputs.
type FeeStructure struct {
	FeeStructureID  string          `json:"feeStructureID"` // Primary Key (UUID)
	ClassID         string          `json:"classID"`        // FK -> classes.class_id
	Term            string          `json:"term"`           // e.g. "First Term"
	AcademicYear    string          `json:"academicYear"`   // e.g. "2024/2025"
	TuitionFee      decimal.Decimal `json:"tuitionFee"`
	DevelopmentLevy decimal.Decimal `json:"developmentLevy"`
	ExamFee         decimal.Decimal `json:"examFee"`
	BooksFee        decimal.Decimal `json:"booksFee"`
	UniformFee      decimal.Decimal `json:"uniformFee"`
	TransportFee    decimal.Decimal `json:"transportFee"`
	SportsFee       decimal.Decimal `json:"sportsFee"`
	TotalFee        decimal.Decimal `json:"totalFee"` // Always the sum of the categories above
	AuditFields
}

// CategoryAmounts returns the per-category amounts in a fixed order.
func (f *FeeStructure) CategoryAmounts() []decimal.Decimal {
	return []decimal.Decimal{
		f.TuitionFee,
		f.DevelopmentLevy,
		f.ExamFee,
		f.BooksFee,
		f.UniformFee,
		f.TransportFee,
		f.SportsFee,
	}
}

// SumCategories computes the total fee from the individual category amounts.
func (f *FeeStructure) SumCategories() decimal.Decimal {
	total := decimal.Zero
	for _, amt := range f.CategoryAmounts() {
		total = total.Add(amt)
	}
	return total
}
