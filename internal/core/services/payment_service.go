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
	"github.com/schoolsuite/fee_ledger_app/internal/utils"
)

// paymentService owns the append-mostly ledger of payment attempts.
// A submitted payment starts Pending and has no effect on balances until the
// verification workflow confirms it.
type paymentService struct {
	paymentRepo  portsrepo.PaymentRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
	balanceSvc   portssvc.BalanceReaderSvc
}

// NewPaymentService creates a new payment ledger service.
func NewPaymentService(
	paymentRepo portsrepo.PaymentRepositoryFacade,
	settingsRepo portsrepo.SettingsRepositoryFacade,
	balanceSvc portssvc.BalanceReaderSvc,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo:  paymentRepo,
		settingsRepo: settingsRepo,
		balanceSvc:   balanceSvc,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// SubmitPayment validates and records a payment attempt with status Pending.
func (s *paymentService) SubmitPayment(ctx context.Context, req dto.SubmitPaymentRequest, recordedBy string) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	method := domain.PaymentMethod(req.PaymentMethod)
	if !method.IsValid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if !req.Amount.IsInteger() {
		return nil, fmt.Errorf("%w: amount must be a whole amount", apperrors.ErrValidation)
	}
	if method.RequiresReference() && req.Reference == "" {
		return nil, fmt.Errorf("%w: reference is required for %s payments", apperrors.ErrValidation, method)
	}

	// The bank settings record decides which channels are currently offered.
	// An unconfigured school accepts every method.
	settings, err := s.settingsRepo.FindSettings(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to fetch bank settings for submission", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch bank settings: %w", err)
	}
	if settings != nil && !settings.Allows(method) {
		return nil, fmt.Errorf("%w: payment method %s is not enabled", apperrors.ErrValidation, method)
	}

	// Classify against the balance at submission time. The amount is not capped:
	// paying past the balance is legal and later yields a negative balance.
	balance, err := s.balanceSvc.ComputeCurrent(ctx, req.StudentID, req.Term, req.AcademicYear)
	if err != nil {
		return nil, err
	}
	paymentType := domain.PartialPayment
	if req.Amount.GreaterThanOrEqual(balance.Balance) {
		paymentType = domain.FullPayment
	}

	now := time.Now().UTC()
	receiptNumber, err := utils.GenerateReceiptNumber(now)
	if err != nil {
		logger.Error("Failed to generate receipt number", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: could not generate receipt number", apperrors.ErrInternal)
	}

	payment := domain.Payment{
		PaymentID:     uuid.NewString(),
		StudentID:     req.StudentID,
		Amount:        req.Amount,
		PaymentType:   paymentType,
		Term:          req.Term,
		AcademicYear:  req.AcademicYear,
		PaymentMethod: method,
		Reference:     req.Reference,
		Status:        domain.StatusPending,
		ReceiptNumber: receiptNumber,
		RecordedBy:    recordedBy,
		RecordedAt:    now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     recordedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: recordedBy,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		logger.Error("Failed to save payment", slog.String("student_id", req.StudentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	logger.Info("Payment submitted",
		slog.String("payment_id", payment.PaymentID),
		slog.String("student_id", payment.StudentID),
		slog.String("amount", payment.Amount.String()),
		slog.String("payment_type", string(payment.PaymentType)),
		slog.String("receipt_number", payment.ReceiptNumber),
	)
	return &payment, nil
}

// GetPayment retrieves a payment by its ID.
func (s *paymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find payment", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to find payment %s: %w", paymentID, err)
	}
	return payment, nil
}

// ListStudentPayments retrieves a student's payments with optional filters.
// No ordering is guaranteed; callers sort by recorded date as needed.
func (s *paymentService) ListStudentPayments(ctx context.Context, studentID string, params dto.ListPaymentsParams) ([]domain.Payment, error) {
	filter := portsrepo.PaymentFilter{}
	if params.Term != "" {
		filter.Term = &params.Term
	}
	if params.AcademicYear != "" {
		filter.AcademicYear = &params.AcademicYear
	}
	if params.Status != "" {
		status := domain.PaymentStatus(params.Status)
		switch status {
		case domain.StatusPending, domain.StatusVerified, domain.StatusRejected, domain.StatusReversed:
			filter.Status = &status
		default:
			return nil, fmt.Errorf("%w: unknown payment status %q", apperrors.ErrValidation, params.Status)
		}
	}

	payments, err := s.paymentRepo.ListPaymentsByStudent(ctx, studentID, filter)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list payments", slog.String("student_id", studentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list payments for student %s: %w", studentID, err)
	}
	return payments, nil
}
