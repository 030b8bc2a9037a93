package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolsuite/fee_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolsuite/fee_ledger_app/internal/core/ports/services"
	"github.com/schoolsuite/fee_ledger_app/internal/middleware"
)

// verificationService implements the payment status state machine.
// Every transition runs inside one database transaction: the payment row is
// locked, the stored status is checked, the flip is written and - when the
// transition enters or leaves Verified - the balance is recomputed before
// commit. No reader can observe a flipped status with a stale balance.
type verificationService struct {
	paymentRepo portsrepo.PaymentRepositoryWithTx
	balanceSvc  portssvc.BalanceSvcFacade
}

// NewVerificationService creates a new verification workflow service.
func NewVerificationService(paymentRepo portsrepo.PaymentRepositoryWithTx, balanceSvc portssvc.BalanceSvcFacade) portssvc.VerificationSvcFacade {
	return &verificationService{
		paymentRepo: paymentRepo,
		balanceSvc:  balanceSvc,
	}
}

var _ portssvc.VerificationSvcFacade = (*verificationService)(nil)

// transition performs a locked check-and-set of the payment status.
// recompute controls whether the student's balance is rebuilt in the same
// transaction (needed whenever the Verified set changes).
func (s *verificationService) transition(ctx context.Context, paymentID string, target domain.PaymentStatus, reason string, actorID string, recompute bool) (*domain.Payment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	tx, err := s.paymentRepo.Begin(ctx)
	if err != nil {
		logger.Error("Failed to begin transaction for payment transition", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		// Rollback is a no-op after a successful commit.
		_ = s.paymentRepo.Rollback(ctx, tx)
	}()

	payment, err := s.paymentRepo.FindPaymentByIDForUpdate(ctx, tx, paymentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: payment %s", apperrors.ErrNotFound, paymentID)
		}
		logger.Error("Failed to lock payment for transition", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to lock payment %s: %w", paymentID, err)
	}

	if !payment.Status.CanTransitionTo(target) {
		logger.Warn("Illegal payment status transition attempted",
			slog.String("payment_id", paymentID),
			slog.String("current_status", string(payment.Status)),
			slog.String("target_status", string(target)),
		)
		return nil, fmt.Errorf("%w: payment %s is %s, cannot move to %s", apperrors.ErrInvalidTransition, paymentID, payment.Status, target)
	}

	now := time.Now().UTC()
	if err := s.paymentRepo.UpdatePaymentStatusInTx(ctx, tx, paymentID, target, reason, actorID, now); err != nil {
		logger.Error("Failed to update payment status", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update payment status: %w", err)
	}

	if recompute {
		if _, err := s.balanceSvc.RecomputeInTx(ctx, tx, payment.StudentID, payment.Term, payment.AcademicYear); err != nil {
			logger.Error("Failed to recompute balance during transition", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to recompute balance: %w", err)
		}
	}

	if err := s.paymentRepo.Commit(ctx, tx); err != nil {
		logger.Error("Failed to commit payment transition", slog.String("payment_id", paymentID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to commit transition: %w", err)
	}

	payment.Status = target
	payment.StatusReason = reason
	payment.LastUpdatedAt = now
	payment.LastUpdatedBy = actorID

	logger.Info("Payment status transitioned",
		slog.String("payment_id", paymentID),
		slog.String("status", string(target)),
		slog.String("actor_id", actorID),
	)
	return payment, nil
}

// VerifyPayment confirms a pending payment. The payment starts counting toward
// the student's paid total, so the balance is recomputed atomically.
func (s *verificationService) VerifyPayment(ctx context.Context, paymentID string, actorID string) (*domain.Payment, error) {
	return s.transition(ctx, paymentID, domain.StatusVerified, "", actorID, true)
}

// RejectPayment declines a pending payment. It never counted, so no recompute.
func (s *verificationService) RejectPayment(ctx context.Context, paymentID string, reason string, actorID string) (*domain.Payment, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: rejection reason must not be blank", apperrors.ErrValidation)
	}
	return s.transition(ctx, paymentID, domain.StatusRejected, reason, actorID, false)
}

// ReversePayment claws back a verified payment. It leaves the Verified set,
// so the balance is recomputed atomically.
func (s *verificationService) ReversePayment(ctx context.Context, paymentID string, reason string, actorID string) (*domain.Payment, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: reversal reason must not be blank", apperrors.ErrValidation)
	}
	return s.transition(ctx, paymentID, domain.StatusReversed, reason, actorID, true)
}
