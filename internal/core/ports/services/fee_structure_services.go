package services

import (
	"context"

	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	"github.com/schoolsuite/fee_ledger_app/internal/dto"
)

// FeeStructureReaderSvc defines read operations for the fee structure catalog
type FeeStructureReaderSvc interface {
	// GetFeeStructure retrieves the fee structure for an exact (class, term, year) key.
	GetFeeStructure(ctx context.Context, classID, term, academicYear string) (*domain.FeeStructure, error)

	// ListFeeStructuresByYear retrieves all fee structures for an academic year.
	ListFeeStructuresByYear(ctx context.Context, academicYear string) ([]domain.FeeStructure, error)
}

// FeeStructureWriterSvc defines write operations for the fee structure catalog
type FeeStructureWriterSvc interface {
	// UpsertFeeStructure validates and stores the fee structure, replacing any
	// existing record for the same key. TotalFee is always recomputed.
	UpsertFeeStructure(ctx context.Context, req dto.UpsertFeeStructureRequest, actorID string) (*domain.FeeStructure, error)
}

// FeeStructureSvcFacade combines the fee-structure service interfaces
type FeeStructureSvcFacade interface {
	FeeStructureReaderSvc
	FeeStructureWriterSvc
}
