package services

import (
	"context"

	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
)

// VerificationSvcFacade is the state machine governing payment lifecycle
// transitions. All transitions observe the stored status at invocation time
// and fail closed on anything but the expected state.
type VerificationSvcFacade interface {
	// VerifyPayment moves a pending payment to Verified and recomputes the
	// student's balance in the same database transaction.
	VerifyPayment(ctx context.Context, paymentID string, actorID string) (*domain.Payment, error)

	// RejectPayment moves a pending payment to Rejected, storing the reason.
	// No balance recompute happens; pending payments were never counted.
	RejectPayment(ctx context.Context, paymentID string, reason string, actorID string) (*domain.Payment, error)

	// ReversePayment claws back a verified payment, moving it to Reversed and
	// recomputing the balance in the same transaction.
	ReversePayment(ctx context.Context, paymentID string, reason string, actorID string) (*domain.Payment, error)
}
