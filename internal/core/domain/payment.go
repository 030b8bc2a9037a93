package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the channel through which a payment was made.
type PaymentMethod string

const (
	MethodCash          PaymentMethod = "CASH"
	MethodBankTransfer  PaymentMethod = "BANK_TRANSFER"
	MethodPOS           PaymentMethod = "POS"
	MethodOnlinePayment PaymentMethod = "ONLINE_PAYMENT"
	MethodCheque        PaymentMethod = "CHEQUE"
)

// RequiresReference reports whether the method implies an external transaction
// and therefore needs a reference at submission time.
func (m PaymentMethod) RequiresReference() bool {
	switch m {
	case MethodBankTransfer, MethodPOS, MethodOnlinePayment:
		return true
	}
	return false
}

// IsValid reports whether m is one of the known payment methods.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodCash, MethodBankTransfer, MethodPOS, MethodOnlinePayment, MethodCheque:
		return true
	}
	return false
}

// PaymentType classifies a payment against the outstanding balance at submission time.
type PaymentType string

const (
	FullPayment    PaymentType = "FULL"
	PartialPayment PaymentType = "PARTIAL"
)

// PaymentStatus is the lifecycle state of a payment.
type PaymentStatus string

const (
	// StatusPending is the initial state; pending payments are recorded but not counted.
	StatusPending PaymentStatus = "PENDING"
	// StatusVerified means an accountant confirmed the payment; only verified
	// payments count toward a student's paid total.
	StatusVerified PaymentStatus = "VERIFIED"
	// StatusRejected is terminal; the payment never counted and never will.
	StatusRejected PaymentStatus = "REJECTED"
	// StatusReversed is terminal; a previously verified payment was clawed back
	// and no longer counts.
	StatusReversed PaymentStatus = "REVERSED"
)

// CanTransitionTo reports whether the status may move to next.
// Pending may be verified or rejected; Verified may only be reversed.
// Rejected and Reversed accept no further transitions.
func (s PaymentStatus) CanTransitionTo(next PaymentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusVerified || next == StatusRejected
	case StatusVerified:
		return next == StatusReversed
	}
	return false
}

// CountsTowardPaid reports whether a payment in this status contributes to totalPaid.
func (s PaymentStatus) CountsTowardPaid() bool {
	return s == StatusVerified
}

// Payment represents a single payment attempt against a student's fee obligation.
// Financial facts (student, amount, method) are immutable once recorded; only the
// status and its reason may change, through the verification workflow.
type Payment struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (UUID)
	StudentID     string          `json:"studentID"`
	Amount        decimal.Decimal `json:"amount"` // Whole currency units, > 0
	PaymentType   PaymentType     `json:"paymentType"`
	Term          string          `json:"term"`
	AcademicYear  string          `json:"academicYear"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Reference     string          `json:"reference"` // External transaction reference; required for transfer/POS/online
	Status        PaymentStatus   `json:"status"`
	StatusReason  string          `json:"statusReason"` // Rejection or reversal reason
	ReceiptNumber string          `json:"receiptNumber"`
	RecordedBy    string          `json:"recordedBy"` // Actor ID
	RecordedAt    time.Time       `json:"recordedAt"`
	AuditFields
}
