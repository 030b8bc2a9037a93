package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/schoolsuite/fee_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider builds the full set of pgsql-backed repositories.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		FeeStructureRepo: newPgxFeeStructureRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		BalanceRepo:      newPgxBalanceRepository(dbPool),
		SettingsRepo:     newPgxSettingsRepository(dbPool),
		StudentDir:       newPgxStudentDirectory(dbPool),
	}
}
