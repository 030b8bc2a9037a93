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
	"github.com/schoolsuite/fee_ledger_app/internal/dto"
	"github.com/schoolsuite/fee_ledger_app/internal/middleware"
)

// settingsService manages the singleton bank account settings record.
// Last write wins; the record is replaced whole.
type settingsService struct {
	settingsRepo        portsrepo.SettingsRepositoryFacade
	accountNumberLength int
}

// NewSettingsService creates a new bank settings service.
// accountNumberLength is the digit-length policy for account numbers (NUBAN is 10).
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade, accountNumberLength int) portssvc.SettingsSvcFacade {
	return &settingsService{
		settingsRepo:        settingsRepo,
		accountNumberLength: accountNumberLength,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

// UpdateSettings validates and fully replaces the settings record.
func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateBankSettingsRequest, actorID string) (*domain.BankAccountSettings, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.BankName) == "" {
		return nil, fmt.Errorf("%w: bank name must not be blank", apperrors.ErrValidation)
	}
	if strings.TrimSpace(req.AccountName) == "" {
		return nil, fmt.Errorf("%w: account name must not be blank", apperrors.ErrValidation)
	}
	if len(req.AccountNumber) != s.accountNumberLength {
		return nil, fmt.Errorf("%w: account number must be %d digits", apperrors.ErrValidation, s.accountNumberLength)
	}
	for _, r := range req.AccountNumber {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: account number must be numeric", apperrors.ErrValidation)
		}
	}

	now := time.Now().UTC()
	settings := domain.BankAccountSettings{
		BankName:      req.BankName,
		AccountName:   req.AccountName,
		AccountNumber: req.AccountNumber,
		EnabledMethods: domain.EnabledPaymentMethods{
			BankTransfer:  req.EnabledMethods.BankTransfer,
			OnlinePayment: req.EnabledMethods.OnlinePayment,
			Cash:          req.EnabledMethods.Cash,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     actorID,
			LastUpdatedAt: now,
			LastUpdatedBy: actorID,
		},
	}

	// Keep the original creation audit when the record already exists.
	existing, err := s.settingsRepo.FindSettings(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		logger.Error("Failed to fetch existing bank settings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch existing settings: %w", err)
	}
	if existing != nil {
		settings.CreatedAt = existing.CreatedAt
		settings.CreatedBy = existing.CreatedBy
	}

	if err := s.settingsRepo.ReplaceSettings(ctx, settings); err != nil {
		logger.Error("Failed to replace bank settings", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to replace settings: %w", err)
	}

	logger.Info("Bank account settings updated", slog.String("actor_id", actorID), slog.String("bank_name", settings.BankName))
	return &settings, nil
}

// GetSettings retrieves the settings record.
func (s *settingsService) GetSettings(ctx context.Context) (*domain.BankAccountSettings, error) {
	settings, err := s.settingsRepo.FindSettings(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to fetch bank settings", slog.String("error", err.Error()))
		}
		return nil, fmt.Errorf("failed to fetch bank settings: %w", err)
	}
	return settings, nil
}
