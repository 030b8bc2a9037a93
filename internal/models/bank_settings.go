package models

// BankAccountSettings is the DB representation of the singleton settings row.
// The id column is always 1; writes replace the row.
type BankAccountSettings struct {
	ID                   int    `db:"id"`
	BankName             string `db:"bank_name"`
	AccountName          string `db:"account_name"`
	AccountNumber        string `db:"account_number"`
	EnableBankTransfer   bool   `db:"enable_bank_transfer"`
	EnableOnlinePayment  bool   `db:"enable_online_payment"`
	EnableCash           bool   `db:"enable_cash"`
	AuditFields
}
