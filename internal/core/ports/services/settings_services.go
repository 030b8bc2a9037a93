package services

import (
	"context"

	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	"github.com/schoolsuite/fee_ledger_app/internal/dto"
)

// SettingsSvcFacade manages the singleton bank account settings record.
type SettingsSvcFacade interface {
	// UpdateSettings performs a validated full replace of the settings record.
	UpdateSettings(ctx context.Context, req dto.UpdateBankSettingsRequest, actorID string) (*domain.BankAccountSettings, error)

	// GetSettings retrieves the settings record, or ErrNotFound if never configured.
	GetSettings(ctx context.Context) (*domain.BankAccountSettings, error)
}
