package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
)

// BalanceReader defines read operations for the derived balance view
type BalanceReader interface {
	// FindBalance retrieves the cached balance row for a (student, term, year) key.
	FindBalance(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error)
}

// BalanceWriter defines write operations for the derived balance view
type BalanceWriter interface {
	// ReplaceBalance persists the recomputed balance, replacing any existing row
	// for the same key.
	ReplaceBalance(ctx context.Context, balance domain.StudentFeeBalance) error

	// ReplaceBalanceInTx persists the recomputed balance within a transaction.
	ReplaceBalanceInTx(ctx context.Context, tx pgx.Tx, balance domain.StudentFeeBalance) error
}

// BalanceRepositoryFacade combines the balance repository interfaces
type BalanceRepositoryFacade interface {
	BalanceReader
	BalanceWriter
}
