package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolsuite/fee_ledger_app/internal/core/ports/repositories"
	"github.com/schoolsuite/fee_ledger_app/internal/models"
)

// settingsRowID is the fixed id of the singleton settings row.
const settingsRowID = 1

type PgxSettingsRepository struct {
	pool *pgxpool.Pool
}

// newPgxSettingsRepository creates a new repository for bank account settings.
func newPgxSettingsRepository(pool *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{pool: pool}
}

var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func toDomainSettings(m models.BankAccountSettings) domain.BankAccountSettings {
	return domain.BankAccountSettings{
		BankName:      m.BankName,
		AccountName:   m.AccountName,
		AccountNumber: m.AccountNumber,
		EnabledMethods: domain.EnabledPaymentMethods{
			BankTransfer:  m.EnableBankTransfer,
			OnlinePayment: m.EnableOnlinePayment,
			Cash:          m.EnableCash,
		},
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

// ReplaceSettings performs a full replace of the singleton settings row.
func (r *PgxSettingsRepository) ReplaceSettings(ctx context.Context, settings domain.BankAccountSettings) error {
	query := `
		INSERT INTO bank_account_settings (id, bank_name, account_name, account_number, enable_bank_transfer, enable_online_payment, enable_cash, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			bank_name = EXCLUDED.bank_name,
			account_name = EXCLUDED.account_name,
			account_number = EXCLUDED.account_number,
			enable_bank_transfer = EXCLUDED.enable_bank_transfer,
			enable_online_payment = EXCLUDED.enable_online_payment,
			enable_cash = EXCLUDED.enable_cash,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`

	_, err := r.pool.Exec(ctx, query,
		settingsRowID,
		settings.BankName,
		settings.AccountName,
		settings.AccountNumber,
		settings.EnabledMethods.BankTransfer,
		settings.EnabledMethods.OnlinePayment,
		settings.EnabledMethods.Cash,
		settings.CreatedAt,
		settings.CreatedBy,
		settings.LastUpdatedAt,
		settings.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to replace bank account settings: %w", err)
	}
	return nil
}

// FindSettings retrieves the settings row.
func (r *PgxSettingsRepository) FindSettings(ctx context.Context) (*domain.BankAccountSettings, error) {
	query := `
		SELECT id, bank_name, account_name, account_number, enable_bank_transfer, enable_online_payment, enable_cash, created_at, created_by, last_updated_at, last_updated_by
		FROM bank_account_settings
		WHERE id = $1;
	`

	var m models.BankAccountSettings
	err := r.pool.QueryRow(ctx, query, settingsRowID).Scan(
		&m.ID,
		&m.BankName,
		&m.AccountName,
		&m.AccountNumber,
		&m.EnableBankTransfer,
		&m.EnableOnlinePayment,
		&m.EnableCash,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account settings: %w", err)
	}

	d := toDomainSettings(m)
	return &d, nil
}
