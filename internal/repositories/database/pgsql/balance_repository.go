package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolsuite/fee_ledger_app/internal/core/ports/repositories"
	"github.com/schoolsuite/fee_ledger_app/internal/models"
)

type PgxBalanceRepository struct {
	pool *pgxpool.Pool
}

// newPgxBalanceRepository creates a new repository for the derived balance cache.
func newPgxBalanceRepository(pool *pgxpool.Pool) portsrepo.BalanceRepositoryFacade {
	return &PgxBalanceRepository{pool: pool}
}

var _ portsrepo.BalanceRepositoryFacade = (*PgxBalanceRepository)(nil)

func toModelBalance(d domain.StudentFeeBalance) models.StudentFeeBalance {
	return models.StudentFeeBalance{
		StudentID:        d.StudentID,
		ClassID:          d.ClassID,
		Term:             d.Term,
		AcademicYear:     d.AcademicYear,
		TotalFeeRequired: d.TotalFeeRequired,
		TotalPaid:        d.TotalPaid,
		Balance:          d.Balance,
		Status:           string(d.Status),
		ComputedAt:       d.ComputedAt,
	}
}

func toDomainBalance(m models.StudentFeeBalance) domain.StudentFeeBalance {
	return domain.StudentFeeBalance{
		StudentID:        m.StudentID,
		ClassID:          m.ClassID,
		Term:             m.Term,
		AcademicYear:     m.AcademicYear,
		TotalFeeRequired: m.TotalFeeRequired,
		TotalPaid:        m.TotalPaid,
		Balance:          m.Balance,
		Status:           domain.BalanceStatus(m.Status),
		ComputedAt:       m.ComputedAt,
	}
}

const balanceColumns = `student_id, class_id, term, academic_year, total_fee_required, total_paid, balance, status, computed_at`

const replaceBalanceQuery = `
	INSERT INTO student_fee_balances (` + balanceColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (student_id, term, academic_year) DO UPDATE SET
		class_id = EXCLUDED.class_id,
		total_fee_required = EXCLUDED.total_fee_required,
		total_paid = EXCLUDED.total_paid,
		balance = EXCLUDED.balance,
		status = EXCLUDED.status,
		computed_at = EXCLUDED.computed_at;
`

func replaceBalance(ctx context.Context, exec func(ctx context.Context, sql string, args ...any) error, balance domain.StudentFeeBalance) error {
	m := toModelBalance(balance)
	return exec(ctx, replaceBalanceQuery,
		m.StudentID,
		m.ClassID,
		m.Term,
		m.AcademicYear,
		m.TotalFeeRequired,
		m.TotalPaid,
		m.Balance,
		m.Status,
		m.ComputedAt,
	)
}

// ReplaceBalance persists the recomputed balance, replacing any existing row.
func (r *PgxBalanceRepository) ReplaceBalance(ctx context.Context, balance domain.StudentFeeBalance) error {
	err := replaceBalance(ctx, func(ctx context.Context, sql string, args ...any) error {
		_, err := r.pool.Exec(ctx, sql, args...)
		return err
	}, balance)
	if err != nil {
		return fmt.Errorf("failed to replace balance for student %s: %w", balance.StudentID, err)
	}
	return nil
}

// ReplaceBalanceInTx persists the recomputed balance within a transaction.
func (r *PgxBalanceRepository) ReplaceBalanceInTx(ctx context.Context, tx pgx.Tx, balance domain.StudentFeeBalance) error {
	err := replaceBalance(ctx, func(ctx context.Context, sql string, args ...any) error {
		_, err := tx.Exec(ctx, sql, args...)
		return err
	}, balance)
	if err != nil {
		return fmt.Errorf("failed to replace balance in tx for student %s: %w", balance.StudentID, err)
	}
	return nil
}

// FindBalance retrieves the cached balance row for a (student, term, year) key.
func (r *PgxBalanceRepository) FindBalance(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error) {
	query := `
		SELECT ` + balanceColumns + `
		FROM student_fee_balances
		WHERE student_id = $1 AND term = $2 AND academic_year = $3;
	`

	var m models.StudentFeeBalance
	err := r.pool.QueryRow(ctx, query, studentID, term, academicYear).Scan(
		&m.StudentID,
		&m.ClassID,
		&m.Term,
		&m.AcademicYear,
		&m.TotalFeeRequired,
		&m.TotalPaid,
		&m.Balance,
		&m.Status,
		&m.ComputedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find balance for student %s: %w", studentID, err)
	}

	d := toDomainBalance(m)
	return &d, nil
}
