package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	portsrepo "github.com/schoolsuite/fee_ledger_app/internal/core/ports/repositories"
)

// PgxStudentDirectory implements the class/student directory contract over the
// reference tables the directory system syncs into this database.
type PgxStudentDirectory struct {
	pool *pgxpool.Pool
}

// newPgxStudentDirectory creates a new student directory adapter.
func newPgxStudentDirectory(pool *pgxpool.Pool) portsrepo.StudentDirectory {
	return &PgxStudentDirectory{pool: pool}
}

var _ portsrepo.StudentDirectory = (*PgxStudentDirectory)(nil)

// ResolveStudentClass returns the class a student currently belongs to.
func (r *PgxStudentDirectory) ResolveStudentClass(ctx context.Context, studentID string) (string, error) {
	query := `SELECT class_id FROM students WHERE student_id = $1;`

	var classID string
	err := r.pool.QueryRow(ctx, query, studentID).Scan(&classID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to resolve class for student %s: %w", studentID, err)
	}
	return classID, nil
}

// ClassExists reports whether the class ID references a known class.
func (r *PgxStudentDirectory) ClassExists(ctx context.Context, classID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM classes WHERE class_id = $1);`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, classID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check class %s: %w", classID, err)
	}
	return exists, nil
}
