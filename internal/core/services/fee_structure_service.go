package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolsuite/fee_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolsuite/fee_ledger_app/internal/core/ports/services"
	"github.com/schoolsuite/fee_ledger_app/internal/dto"
	"github.com/schoolsuite/fee_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// feeStructureService manages the fee composition catalog.
type feeStructureService struct {
	feeStructureRepo portsrepo.FeeStructureRepositoryFacade
	studentDir       portsrepo.StudentDirectory
}

// NewFeeStructureService creates a new fee structure catalog service.
func NewFeeStructureService(feeStructureRepo portsrepo.FeeStructureRepositoryFacade, studentDir portsrepo.StudentDirectory) portssvc.FeeStructureSvcFacade {
	return &feeStructureService{
		feeStructureRepo: feeStructureRepo,
		studentDir:       studentDir,
	}
}

var _ portssvc.FeeStructureSvcFacade = (*feeStructureService)(nil)

// validateCategoryAmount checks that a category amount is a non-negative whole number.
func validateCategoryAmount(name string, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", apperrors.ErrValidation, name)
	}
	if !amount.IsInteger() {
		return fmt.Errorf("%w: %s must be a whole amount", apperrors.ErrValidation, name)
	}
	return nil
}

// UpsertFeeStructure validates and stores the fee structure for a
// (class, term, year) key. A second write for the same key replaces the
// record as a whole, and TotalFee is always recomputed from the categories.
func (s *feeStructureService) UpsertFeeStructure(ctx context.Context, req dto.UpsertFeeStructureRequest, actorID string) (*domain.FeeStructure, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	categories := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"tuitionFee", req.TuitionFee},
		{"developmentLevy", req.DevelopmentLevy},
		{"examFee", req.ExamFee},
		{"booksFee", req.BooksFee},
		{"uniformFee", req.UniformFee},
		{"transportFee", req.TransportFee},
		{"sportsFee", req.SportsFee},
	}
	for _, cat := range categories {
		if err := validateCategoryAmount(cat.name, cat.amount); err != nil {
			return nil, err
		}
	}

	exists, err := s.studentDir.ClassExists(ctx, req.ClassID)
	if err != nil {
		logger.Error("Failed to check class existence", slog.String("class_id", req.ClassID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to check class %s: %w", req.ClassID, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: class %s does not exist", apperrors.ErrValidation, req.ClassID)
	}

	now := time.Now().UTC()
	fs := domain.FeeStructure{
		FeeStructureID:  uuid.NewString(),
		ClassID:         req.ClassID,
		Term:            req.Term,
		AcademicYear:    req.AcademicYear,
		TuitionFee:      req.TuitionFee,
		DevelopmentLevy: req.DevelopmentLevy,
		ExamFee:         req.ExamFee,
		BooksFee:        req.BooksFee,
		UniformFee:      req.UniformFee,
		TransportFee:    req.TransportFee,
		SportsFee:       req.SportsFee,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}
	fs.TotalFee = fs.SumCategories()

	// Writing over an existing key keeps the original identity and creation audit.
	existing, err := s.feeStructureRepo.FindFeeStructure(ctx, req.ClassID, req.Term, req.AcademicYear)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to look up existing fee structure", slog.String("class_id", req.ClassID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to look up existing fee structure: %w", err)
	}
	if existing != nil {
		fs.FeeStructureID = existing.FeeStructureID
		fs.CreatedAt = existing.CreatedAt
		fs.CreatedBy = existing.CreatedBy
	}

	if err := s.feeStructureRepo.UpsertFeeStructure(ctx, fs); err != nil {
		logger.Error("Failed to upsert fee structure", slog.String("class_id", req.ClassID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to upsert fee structure: %w", err)
	}

	logger.Info("Fee structure upserted",
		slog.String("fee_structure_id", fs.FeeStructureID),
		slog.String("class_id", fs.ClassID),
		slog.String("term", fs.Term),
		slog.String("academic_year", fs.AcademicYear),
		slog.String("total_fee", fs.TotalFee.String()),
	)
	return &fs, nil
}

// GetFeeStructure retrieves the fee structure for an exact key.
func (s *feeStructureService) GetFeeStructure(ctx context.Context, classID, term, academicYear string) (*domain.FeeStructure, error) {
	fs, err := s.feeStructureRepo.FindFeeStructure(ctx, classID, term, academicYear)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find fee structure", slog.String("class_id", classID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find fee structure for class %s: %w", classID, err)
	}
	return fs, nil
}

// ListFeeStructuresByYear retrieves all fee structures for an academic year.
func (s *feeStructureService) ListFeeStructuresByYear(ctx context.Context, academicYear string) ([]domain.FeeStructure, error) {
	structures, err := s.feeStructureRepo.ListFeeStructuresByYear(ctx, academicYear)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list fee structures", slog.String("academic_year", academicYear), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list fee structures for %s: %w", academicYear, err)
	}
	return structures, nil
}
