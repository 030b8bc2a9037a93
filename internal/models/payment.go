package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus mirrors domain.PaymentStatus at the storage layer.
type PaymentStatus string

// PaymentMethod mirrors domain.PaymentMethod at the storage layer.
type PaymentMethod string

// PaymentType mirrors domain.PaymentType at the storage layer.
type PaymentType string

// Payment is the DB representation of a payment row.
// Indexed by (student_id, term, academic_year, status); receipt_number is unique.
type Payment struct {
	PaymentID     string          `db:"payment_id"`
	StudentID     string          `db:"student_id"`
	Amount        decimal.Decimal `db:"amount"`
	PaymentType   PaymentType     `db:"payment_type"`
	Term          string          `db:"term"`
	AcademicYear  string          `db:"academic_year"`
	PaymentMethod PaymentMethod   `db:"payment_method"`
	Reference     string          `db:"reference"`
	Status        PaymentStatus   `db:"status"`
	StatusReason  string          `db:"status_reason"`
	ReceiptNumber string          `db:"receipt_number"`
	RecordedBy    string          `db:"recorded_by"`
	RecordedAt    time.Time       `db:"recorded_at"`
	AuditFields
}
