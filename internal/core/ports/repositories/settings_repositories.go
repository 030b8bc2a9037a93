package repositories

import (
	"context"

	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
)

// SettingsRepositoryFacade stores the single bank account settings record.
type SettingsRepositoryFacade interface {
	// FindSettings retrieves the settings row, or ErrNotFound if never configured.
	FindSettings(ctx context.Context) (*domain.BankAccountSettings, error)

	// ReplaceSettings performs a full replace of the singleton settings row.
	ReplaceSettings(ctx context.Context, settings domain.BankAccountSettings) error
}
