package dto

import (
	"time"

	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitPaymentRequest defines the data needed to record a payment attempt.
type SubmitPaymentRequest struct {
	StudentID     string          `json:"studentID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	PaymentMethod string          `json:"paymentMethod" binding:"required"`
	Term          string          `json:"term" binding:"required"`
	AcademicYear  string          `json:"academicYear" binding:"required"`
	Reference     string          `json:"reference"`
}

// RejectPaymentRequest carries the mandatory rejection reason.
type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ReversePaymentRequest carries the mandatory reversal reason.
type ReversePaymentRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// ListPaymentsParams narrows a student payment listing. Empty fields are ignored.
type ListPaymentsParams struct {
	Term         string `form:"term"`
	AcademicYear string `form:"academicYear"`
	Status       string `form:"status"`
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	StudentID     string          `json:"studentID"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentType   string          `json:"paymentType"`
	Term          string          `json:"term"`
	AcademicYear  string          `json:"academicYear"`
	PaymentMethod string          `json:"paymentMethod"`
	Reference     string          `json:"reference,omitempty"`
	Status        string          `json:"status"`
	StatusReason  string          `json:"statusReason,omitempty"`
	ReceiptNumber string          `json:"receiptNumber"`
	RecordedBy    string          `json:"recordedBy"`
	RecordedAt    time.Time       `json:"recordedAt"`
}

// ToPaymentResponse converts a domain.Payment to its response DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		StudentID:     p.StudentID,
		Amount:        p.Amount,
		PaymentType:   string(p.PaymentType),
		Term:          p.Term,
		AcademicYear:  p.AcademicYear,
		PaymentMethod: string(p.PaymentMethod),
		Reference:     p.Reference,
		Status:        string(p.Status),
		StatusReason:  p.StatusReason,
		ReceiptNumber: p.ReceiptNumber,
		RecordedBy:    p.RecordedBy,
		RecordedAt:    p.RecordedAt,
	}
}

// ToPaymentResponses converts a slice of domain.Payment to response DTOs.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i := range payments {
		res[i] = ToPaymentResponse(&payments[i])
	}
	return res
}
