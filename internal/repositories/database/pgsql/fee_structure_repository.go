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

type PgxFeeStructureRepository struct {
	pool *pgxpool.Pool
}

// newPgxFeeStructureRepository creates a new repository for fee structure data.
func newPgxFeeStructureRepository(pool *pgxpool.Pool) portsrepo.FeeStructureRepositoryFacade {
	return &PgxFeeStructureRepository{pool: pool}
}

var _ portsrepo.FeeStructureRepositoryFacade = (*PgxFeeStructureRepository)(nil)

func toModelFeeStructure(d domain.FeeStructure) models.FeeStructure {
	return models.FeeStructure{
		FeeStructureID:  d.FeeStructureID,
		ClassID:         d.ClassID,
		Term:            d.Term,
		AcademicYear:    d.AcademicYear,
		TuitionFee:      d.TuitionFee,
		DevelopmentLevy: d.DevelopmentLevy,
		ExamFee:         d.ExamFee,
		BooksFee:        d.BooksFee,
		UniformFee:      d.UniformFee,
		TransportFee:    d.TransportFee,
		SportsFee:       d.SportsFee,
		TotalFee:        d.TotalFee,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainFeeStructure(m models.FeeStructure) domain.FeeStructure {
	return domain.FeeStructure{
		FeeStructureID:  m.FeeStructureID,
		ClassID:         m.ClassID,
		Term:            m.Term,
		AcademicYear:    m.AcademicYear,
		TuitionFee:      m.TuitionFee,
		DevelopmentLevy: m.DevelopmentLevy,
		ExamFee:         m.ExamFee,
		BooksFee:        m.BooksFee,
		UniformFee:      m.UniformFee,
		TransportFee:    m.TransportFee,
		SportsFee:       m.SportsFee,
		TotalFee:        m.TotalFee,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const feeStructureColumns = `fee_structure_id, class_id, term, academic_year, tuition_fee, development_levy, exam_fee, books_fee, uniform_fee, transport_fee, sports_fee, total_fee, created_at, created_by, last_updated_at, last_updated_by`

func scanFeeStructure(row pgx.Row) (models.FeeStructure, error) {
	var m models.FeeStructure
	err := row.Scan(
		&m.FeeStructureID,
		&m.ClassID,
		&m.Term,
		&m.AcademicYear,
		&m.TuitionFee,
		&m.DevelopmentLevy,
		&m.ExamFee,
		&m.BooksFee,
		&m.UniformFee,
		&m.TransportFee,
		&m.SportsFee,
		&m.TotalFee,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// UpsertFeeStructure inserts the fee structure or replaces the existing record
// for the same (class_id, term, academic_year) key.
func (r *PgxFeeStructureRepository) UpsertFeeStructure(ctx context.Context, fs domain.FeeStructure) error {
	m := toModelFeeStructure(fs)

	query := `
		INSERT INTO fee_structures (` + feeStructureColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (class_id, term, academic_year) DO UPDATE SET
			tuition_fee = EXCLUDED.tuition_fee,
			development_levy = EXCLUDED.development_levy,
			exam_fee = EXCLUDED.exam_fee,
			books_fee = EXCLUDED.books_fee,
			uniform_fee = EXCLUDED.uniform_fee,
			transport_fee = EXCLUDED.transport_fee,
			sports_fee = EXCLUDED.sports_fee,
			total_fee = EXCLUDED.total_fee,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.pool.Exec(ctx, query,
		m.FeeStructureID,
		m.ClassID,
		m.Term,
		m.AcademicYear,
		m.TuitionFee,
		m.DevelopmentLevy,
		m.ExamFee,
		m.BooksFee,
		m.UniformFee,
		m.TransportFee,
		m.SportsFee,
		m.TotalFee,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert fee structure for class %s: %w", m.ClassID, err)
	}
	return nil
}

// FindFeeStructure retrieves the fee structure for an exact key.
func (r *PgxFeeStructureRepository) FindFeeStructure(ctx context.Context, classID, term, academicYear string) (*domain.FeeStructure, error) {
	query := `
		SELECT ` + feeStructureColumns + `
		FROM fee_structures
		WHERE class_id = $1 AND term = $2 AND academic_year = $3;
	`

	m, err := scanFeeStructure(r.pool.QueryRow(ctx, query, classID, term, academicYear))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fee structure for class %s: %w", classID, err)
	}

	d := toDomainFeeStructure(m)
	return &d, nil
}

// ListFeeStructuresByYear retrieves all fee structures for an academic year.
func (r *PgxFeeStructureRepository) ListFeeStructuresByYear(ctx context.Context, academicYear string) ([]domain.FeeStructure, error) {
	query := `
		SELECT ` + feeStructureColumns + `
		FROM fee_structures
		WHERE academic_year = $1
		ORDER BY class_id, term;
	`

	rows, err := r.pool.Query(ctx, query, academicYear)
	if err != nil {
		return nil, fmt.Errorf("failed to query fee structures for %s: %w", academicYear, err)
	}
	defer rows.Close()

	structures := []domain.FeeStructure{}
	for rows.Next() {
		m, err := scanFeeStructure(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fee structure row: %w", err)
		}
		structures = append(structures, toDomainFeeStructure(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fee structure rows: %w", err)
	}
	return structures, nil
}
