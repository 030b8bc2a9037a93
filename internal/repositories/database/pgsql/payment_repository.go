package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolsuite/fee_ledger_app/internal/core/ports/repositories"
	"github.com/schoolsuite/fee_ledger_app/internal/models"
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for payment ledger data.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepositoryWithTx {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

func toModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:     d.PaymentID,
		StudentID:     d.StudentID,
		Amount:        d.Amount,
		PaymentType:   models.PaymentType(d.PaymentType),
		Term:          d.Term,
		AcademicYear:  d.AcademicYear,
		PaymentMethod: models.PaymentMethod(d.PaymentMethod),
		Reference:     d.Reference,
		Status:        models.PaymentStatus(d.Status),
		StatusReason:  d.StatusReason,
		ReceiptNumber: d.ReceiptNumber,
		RecordedBy:    d.RecordedBy,
		RecordedAt:    d.RecordedAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:     m.PaymentID,
		StudentID:     m.StudentID,
		Amount:        m.Amount,
		PaymentType:   domain.PaymentType(m.PaymentType),
		Term:          m.Term,
		AcademicYear:  m.AcademicYear,
		PaymentMethod: domain.PaymentMethod(m.PaymentMethod),
		Reference:     m.Reference,
		Status:        domain.PaymentStatus(m.Status),
		StatusReason:  m.StatusReason,
		ReceiptNumber: m.ReceiptNumber,
		RecordedBy:    m.RecordedBy,
		RecordedAt:    m.RecordedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const paymentColumns = `payment_id, student_id, amount, payment_type, term, academic_year, payment_method, reference, status, status_reason, receipt_number, recorded_by, recorded_at, created_at, created_by, last_updated_at, last_updated_by`

func scanPayment(row pgx.Row) (models.Payment, error) {
	var m models.Payment
	var reference, statusReason sql.NullString
	err := row.Scan(
		&m.PaymentID,
		&m.StudentID,
		&m.Amount,
		&m.PaymentType,
		&m.Term,
		&m.AcademicYear,
		&m.PaymentMethod,
		&reference,
		&m.Status,
		&statusReason,
		&m.ReceiptNumber,
		&m.RecordedBy,
		&m.RecordedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return m, err
	}
	if reference.Valid {
		m.Reference = reference.String
	}
	if statusReason.Valid {
		m.StatusReason = statusReason.String
	}
	return m, nil
}

// SavePayment inserts a new payment row. Financial facts are immutable after
// this insert; only status columns change later, through the tx methods.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	m := toModelPayment(payment)

	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`

	var reference, statusReason sql.NullString
	if m.Reference != "" {
		reference = sql.NullString{String: m.Reference, Valid: true}
	}
	if m.StatusReason != "" {
		statusReason = sql.NullString{String: m.StatusReason, Valid: true}
	}

	_, err := r.Pool.Exec(ctx, query,
		m.PaymentID,
		m.StudentID,
		m.Amount,
		m.PaymentType,
		m.Term,
		m.AcademicYear,
		m.PaymentMethod,
		reference,
		m.Status,
		statusReason,
		m.ReceiptNumber,
		m.RecordedBy,
		m.RecordedAt,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "payments_receipt_number_key" {
				return fmt.Errorf("%w: receipt number %s already issued", apperrors.ErrConflict, m.ReceiptNumber)
			}
			return fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, m.PaymentID)
		}
		return fmt.Errorf("failed to save payment %s: %w", m.PaymentID, err)
	}
	return nil
}

// FindPaymentByID retrieves a payment by its ID.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1;`

	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}

	d := toDomainPayment(m)
	return &d, nil
}

// ListPaymentsByStudent retrieves payments for a student with optional filters.
func (r *PgxPaymentRepository) ListPaymentsByStudent(ctx context.Context, studentID string, filter portsrepo.PaymentFilter) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE student_id = $1`
	args := []any{studentID}

	if filter.Term != nil {
		args = append(args, *filter.Term)
		query += fmt.Sprintf(" AND term = $%d", len(args))
	}
	if filter.AcademicYear != nil {
		args = append(args, *filter.AcademicYear)
		query += fmt.Sprintf(" AND academic_year = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for student %s: %w", studentID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, toDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

// SumVerifiedAmount sums verified payment amounts for a (student, term, year) key.
func (r *PgxPaymentRepository) SumVerifiedAmount(ctx context.Context, studentID, term, academicYear string) (decimal.Decimal, error) {
	return sumVerified(ctx, r.Pool, studentID, term, academicYear)
}

// SumVerifiedAmountInTx sums verified payment amounts within a transaction.
func (r *PgxPaymentRepository) SumVerifiedAmountInTx(ctx context.Context, tx pgx.Tx, studentID, term, academicYear string) (decimal.Decimal, error) {
	return sumVerified(ctx, tx, studentID, term, academicYear)
}

// queryRower is satisfied by both *pgxpool.Pool and pgx.Tx.
type queryRower interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func sumVerified(ctx context.Context, q queryRower, studentID, term, academicYear string) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM payments
		WHERE student_id = $1 AND term = $2 AND academic_year = $3 AND status = $4;
	`

	var total decimal.Decimal
	err := q.QueryRow(ctx, query, studentID, term, academicYear, string(domain.StatusVerified)).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum verified payments for student %s: %w", studentID, err)
	}
	return total, nil
}

// FindPaymentByIDForUpdate selects a payment and locks its row for update.
// Must be called within a transaction.
func (r *PgxPaymentRepository) FindPaymentByIDForUpdate(ctx context.Context, tx pgx.Tx, paymentID string) (*domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE payment_id = $1 FOR UPDATE;`

	m, err := scanPayment(tx.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock payment %s: %w", paymentID, err)
	}

	d := toDomainPayment(m)
	return &d, nil
}

// UpdatePaymentStatusInTx flips a payment's status and reason within a transaction.
func (r *PgxPaymentRepository) UpdatePaymentStatusInTx(ctx context.Context, tx pgx.Tx, paymentID string, status domain.PaymentStatus, reason string, actorID string, now time.Time) error {
	query := `
		UPDATE payments
		SET status = $2, status_reason = $3, last_updated_at = $4, last_updated_by = $5
		WHERE payment_id = $1;
	`

	var statusReason sql.NullString
	if reason != "" {
		statusReason = sql.NullString{String: reason, Valid: true}
	}

	cmdTag, err := tx.Exec(ctx, query, paymentID, string(status), statusReason, now, actorID)
	if err != nil {
		return fmt.Errorf("failed to update status for payment %s: %w", paymentID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
