package domain

// EnabledPaymentMethods holds the per-school toggles for payment channels
// parents may use when submitting payments.
type EnabledPaymentMethods struct {
	BankTransfer  bool `json:"bankTransfer"`
	OnlinePayment bool `json:"onlinePayment"`
	Cash          bool `json:"cash"`
}

// BankAccountSettings is the single mutable configuration record holding the
// school's bank details and enabled payment methods. It is injected into the
// payment submission flow rather than read as ambient state.
type BankAccountSettings struct {
	BankName       string                `json:"bankName"`
	AccountName    string                `json:"accountName"`
	AccountNumber  string                `json:"accountNumber"`
	EnabledMethods EnabledPaymentMethods `json:"enabledMethods"`
	AuditFields
}

// Allows reports whether the given payment method is currently accepted.
// POS and cheque payments are recorded at the school itself and have no toggle.
func (s *BankAccountSettings) Allows(method PaymentMethod) bool {
	switch method {
	case MethodBankTransfer:
		return s.EnabledMethods.BankTransfer
	case MethodOnlinePayment:
		return s.EnabledMethods.OnlinePayment
	case MethodCash:
		return s.EnabledMethods.Cash
	}
	return true
}
