package services

import (
	"context"

	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	"github.com/schoolsuite/fee_ledger_app/internal/dto"
)

// PaymentReaderSvc defines read operations for the payment ledger
type PaymentReaderSvc interface {
	// GetPayment retrieves a specific payment by its ID.
	GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListStudentPayments retrieves a student's payments, optionally filtered
	// by term, academic year and status.
	ListStudentPayments(ctx context.Context, studentID string, params dto.ListPaymentsParams) ([]domain.Payment, error)
}

// PaymentWriterSvc defines write operations for the payment ledger
type PaymentWriterSvc interface {
	// SubmitPayment records a new payment attempt in Pending status.
	// Pending payments never affect the student's balance.
	SubmitPayment(ctx context.Context, req dto.SubmitPaymentRequest, recordedBy string) (*domain.Payment, error)
}

// PaymentSvcFacade combines the payment ledger service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
