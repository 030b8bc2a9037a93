package repositories

import (
	"context"

	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
)

// FeeStructureReader defines read operations for fee structure data
type FeeStructureReader interface {
	// FindFeeStructure retrieves the fee structure for an exact (class, term, year) key.
	FindFeeStructure(ctx context.Context, classID, term, academicYear string) (*domain.FeeStructure, error)

	// ListFeeStructuresByYear retrieves all fee structures for an academic year.
	ListFeeStructuresByYear(ctx context.Context, academicYear string) ([]domain.FeeStructure, error)
}

// FeeStructureWriter defines write operations for fee structure data
type FeeStructureWriter interface {
	// UpsertFeeStructure inserts the structure or replaces the existing record
	// for the same (class, term, year) key.
	UpsertFeeStructure(ctx context.Context, fs domain.FeeStructure) error
}

// FeeStructureRepositoryFacade combines all fee-structure repository interfaces
type FeeStructureRepositoryFacade interface {
	FeeStructureReader
	FeeStructureWriter
}
