package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolsuite/fee_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolsuite/fee_ledger_app/internal/core/ports/services"
	"github.com/schoolsuite/fee_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// balanceService derives student fee balances from the fee structure catalog
// and the ledger of verified payments. The derivation is a pure function of
// those inputs; the stored balance row is only a cache of the result.
type balanceService struct {
	feeStructureRepo portsrepo.FeeStructureReader
	paymentRepo      portsrepo.PaymentRepositoryFacade
	balanceRepo      portsrepo.BalanceRepositoryFacade
	studentDir       portsrepo.StudentDirectory
}

// NewBalanceService creates a new balance reconciliation service.
func NewBalanceService(
	feeStructureRepo portsrepo.FeeStructureReader,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	balanceRepo portsrepo.BalanceRepositoryFacade,
	studentDir portsrepo.StudentDirectory,
) portssvc.BalanceSvcFacade {
	return &balanceService{
		feeStructureRepo: feeStructureRepo,
		paymentRepo:      paymentRepo,
		balanceRepo:      balanceRepo,
		studentDir:       studentDir,
	}
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

// derive assembles the balance view from the student's class, the matching fee
// structure and the already-summed verified payment total. A missing fee
// structure is not an error: the required total is simply zero.
func (s *balanceService) derive(ctx context.Context, studentID, term, academicYear string, totalPaid decimal.Decimal) (*domain.StudentFeeBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	classID, err := s.studentDir.ResolveStudentClass(ctx, studentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: student %s", apperrors.ErrNotFound, studentID)
		}
		logger.Error("Failed to resolve student class", slog.String("student_id", studentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to resolve class for student %s: %w", studentID, err)
	}

	totalFeeRequired := decimal.Zero
	fs, err := s.feeStructureRepo.FindFeeStructure(ctx, classID, term, academicYear)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to fetch fee structure for balance derivation", slog.String("class_id", classID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to fetch fee structure: %w", err)
		}
	} else {
		totalFeeRequired = fs.TotalFee
	}

	return &domain.StudentFeeBalance{
		StudentID:        studentID,
		ClassID:          classID,
		Term:             term,
		AcademicYear:     academicYear,
		TotalFeeRequired: totalFeeRequired,
		TotalPaid:        totalPaid,
		Balance:          totalFeeRequired.Sub(totalPaid),
		Status:           domain.ClassifyBalance(totalPaid, totalFeeRequired),
		ComputedAt:       time.Now().UTC(),
	}, nil
}

// ComputeCurrent derives the balance without persisting it.
func (s *balanceService) ComputeCurrent(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error) {
	totalPaid, err := s.paymentRepo.SumVerifiedAmount(ctx, studentID, term, academicYear)
	if err != nil {
		return nil, fmt.Errorf("failed to sum verified payments: %w", err)
	}
	return s.derive(ctx, studentID, term, academicYear, totalPaid)
}

// Recompute derives the balance and replaces the stored row for the key.
func (s *balanceService) Recompute(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	balance, err := s.ComputeCurrent(ctx, studentID, term, academicYear)
	if err != nil {
		return nil, err
	}

	if err := s.balanceRepo.ReplaceBalance(ctx, *balance); err != nil {
		logger.Error("Failed to persist recomputed balance", slog.String("student_id", studentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to persist balance: %w", err)
	}

	logger.Debug("Balance recomputed",
		slog.String("student_id", studentID),
		slog.String("term", term),
		slog.String("academic_year", academicYear),
		slog.String("total_paid", balance.TotalPaid.String()),
		slog.String("balance", balance.Balance.String()),
	)
	return balance, nil
}

// RecomputeInTx derives the balance using the transaction's view of the ledger
// and replaces the stored row within that transaction. The verification
// workflow uses this so a status flip and its balance commit together.
func (s *balanceService) RecomputeInTx(ctx context.Context, tx pgx.Tx, studentID, term, academicYear string) (*domain.StudentFeeBalance, error) {
	totalPaid, err := s.paymentRepo.SumVerifiedAmountInTx(ctx, tx, studentID, term, academicYear)
	if err != nil {
		return nil, fmt.Errorf("failed to sum verified payments in tx: %w", err)
	}

	balance, err := s.derive(ctx, studentID, term, academicYear, totalPaid)
	if err != nil {
		return nil, err
	}

	if err := s.balanceRepo.ReplaceBalanceInTx(ctx, tx, *balance); err != nil {
		return nil, fmt.Errorf("failed to persist balance in tx: %w", err)
	}
	return balance, nil
}

// GetBalance returns the cached balance row, deriving it on the fly when the
// key was never reconciled before.
func (s *balanceService) GetBalance(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error) {
	balance, err := s.balanceRepo.FindBalance(ctx, studentID, term, academicYear)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.ComputeCurrent(ctx, studentID, term, academicYear)
		}
		return nil, fmt.Errorf("failed to fetch balance: %w", err)
	}
	return balance, nil
}
