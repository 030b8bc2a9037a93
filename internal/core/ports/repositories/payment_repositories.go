package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PaymentFilter narrows payment listings. Nil fields are not applied.
type PaymentFilter struct {
	Term         *string
	AcademicYear *string
	Status       *domain.PaymentStatus
}

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// FindPaymentByID retrieves a specific payment by its unique identifier.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error)

	// ListPaymentsByStudent retrieves payments for a student, optionally filtered.
	// No ordering is guaranteed; callers sort as needed.
	ListPaymentsByStudent(ctx context.Context, studentID string, filter PaymentFilter) ([]domain.Payment, error)

	// SumVerifiedAmount sums the amounts of verified payments for a (student, term, year) key.
	SumVerifiedAmount(ctx context.Context, studentID, term, academicYear string) (decimal.Decimal, error)
}

// PaymentWriter defines write operations for payment data
type PaymentWriter interface {
	// SavePayment persists a new payment record.
	SavePayment(ctx context.Context, payment domain.Payment) error
}

// PaymentTransactionSupport defines the operations the verification workflow
// runs inside a database transaction so a status flip and the follow-on
// balance recompute commit together.
type PaymentTransactionSupport interface {
	// FindPaymentByIDForUpdate selects a payment and locks its row for update.
	FindPaymentByIDForUpdate(ctx context.Context, tx pgx.Tx, paymentID string) (*domain.Payment, error)

	// UpdatePaymentStatusInTx flips a payment's status and reason within a transaction.
	UpdatePaymentStatusInTx(ctx context.Context, tx pgx.Tx, paymentID string, status domain.PaymentStatus, reason string, actorID string, now time.Time) error

	// SumVerifiedAmountInTx sums verified payment amounts within a transaction.
	SumVerifiedAmountInTx(ctx context.Context, tx pgx.Tx, studentID, term, academicYear string) (decimal.Decimal, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
	PaymentTransactionSupport
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
