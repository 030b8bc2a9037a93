package models

import "github.com/shopspring/decimal"

// FeeStructure is the DB representation of a fee structure row.
// Unique key: (class_id, term, academic_year).
type FeeStructure struct {
	FeeStructureID  string          `db:"fee_structure_id"`
	ClassID         string          `db:"class_id"`
	Term            string          `db:"term"`
	AcademicYear    string          `db:"academic_year"`
	TuitionFee      decimal.Decimal `db:"tuition_fee"`
	DevelopmentLevy decimal.Decimal `db:"development_levy"`
	ExamFee         decimal.Decimal `db:"exam_fee"`
	BooksFee        decimal.Decimal `db:"books_fee"`
	UniformFee      decimal.Decimal `db:"uniform_fee"`
	TransportFee    decimal.Decimal `db:"transport_fee"`
	SportsFee       decimal.Decimal `db:"sports_fee"`
	TotalFee        decimal.Decimal `db:"total_fee"`
	AuditFields
}
