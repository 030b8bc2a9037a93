package services

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
)

// BalanceReaderSvc defines read operations for derived balances
type BalanceReaderSvc interface {
	// GetBalance returns the stored balance row for a (student, term, year) key,
	// computing it on the fly if it was never persisted.
	GetBalance(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error)

	// ComputeCurrent derives the balance from the fee structure and the verified
	// payments without persisting anything.
	ComputeCurrent(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error)
}

// BalanceWriterSvc defines the reconciliation operations
type BalanceWriterSvc interface {
	// Recompute derives and persists the balance for a (student, term, year) key.
	// It is a pure function of the fee structure and the verified payment set,
	// so re-invoking it any number of times is safe.
	Recompute(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error)

	// RecomputeInTx performs the same derivation inside an existing database
	// transaction, so a payment status flip and the balance it implies are
	// committed together.
	RecomputeInTx(ctx context.Context, tx pgx.Tx, studentID, term, academicYear string) (*domain.StudentFeeBalance, error)
}

// BalanceSvcFacade combines the balance reconciliation interfaces
type BalanceSvcFacade interface {
	BalanceReaderSvc
	BalanceWriterSvc
}
