package dto

import (
	"time"

	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
)

// EnabledMethodsPayload mirrors the per-method toggles.
type EnabledMethodsPayload struct {
	BankTransfer  bool `json:"bankTransfer"`
	OnlinePayment bool `json:"onlinePayment"`
	Cash          bool `json:"cash"`
}

// UpdateBankSettingsRequest defines the full-replace payload for bank settings.
type UpdateBankSettingsRequest struct {
	BankName       string                `json:"bankName" binding:"required"`
	AccountName    string                `json:"accountName" binding:"required"`
	AccountNumber  string                `json:"accountNumber" binding:"required,numeric"`
	EnabledMethods EnabledMethodsPayload `json:"enabledMethods"`
}

// BankSettingsResponse defines the data returned for bank account settings.
type BankSettingsResponse struct {
	BankName       string                `json:"bankName"`
	AccountName    string                `json:"accountName"`
	AccountNumber  string                `json:"accountNumber"`
	EnabledMethods EnabledMethodsPayload `json:"enabledMethods"`
	LastUpdatedAt  time.Time             `json:"lastUpdatedAt"`
	LastUpdatedBy  string                `json:"lastUpdatedBy"`
}

// ToBankSettingsResponse converts domain.BankAccountSettings to its response DTO.
func ToBankSettingsResponse(s *domain.BankAccountSettings) BankSettingsResponse {
	return BankSettingsResponse{
		BankName:      s.BankName,
		AccountName:   s.AccountName,
		AccountNumber: s.AccountNumber,
		EnabledMethods: EnabledMethodsPayload{
			BankTransfer:  s.EnabledMethods.BankTransfer,
			OnlinePayment: s.EnabledMethods.OnlinePayment,
			Cash:          s.EnabledMethods.Cash,
		},
		LastUpdatedAt: s.LastUpdatedAt,
		LastUpdatedBy: s.LastUpdatedBy,
	}
}
