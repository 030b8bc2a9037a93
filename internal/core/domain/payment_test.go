package domain_test

import (
	"testing"

	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestPaymentStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from domain.PaymentStatus
		to   domain.PaymentStatus
		want bool
	}{
		{"pending to verified", domain.StatusPending, domain.StatusVerified, true},
		{"pending to rejected", domain.StatusPending, domain.StatusRejected, true},
		{"pending to reversed", domain.StatusPending, domain.StatusReversed, false},
		{"verified to reversed", domain.StatusVerified, domain.StatusReversed, true},
		{"verified to rejected", domain.StatusVerified, domain.StatusRejected, false},
		{"verified to pending", domain.StatusVerified, domain.StatusPending, false},
		{"rejected is terminal", domain.StatusRejected, domain.StatusVerified, false},
		{"rejected cannot be reversed", domain.StatusRejected, domain.StatusReversed, false},
		{"reversed is terminal", domain.StatusReversed, domain.StatusVerified, false},
		{"reversed cannot go back to pending", domain.StatusReversed, domain.StatusPending, false},
		{"no self transition", domain.StatusPending, domain.StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPaymentStatus_CountsTowardPaid(t *testing.T) {
	assert.True(t, domain.StatusVerified.CountsTowardPaid())
	assert.False(t, domain.StatusPending.CountsTowardPaid())
	assert.False(t, domain.StatusRejected.CountsTowardPaid())
	assert.False(t, domain.StatusReversed.CountsTowardPaid())
}

func TestPaymentMethod_RequiresReference(t *testing.T) {
	tests := []struct {
		method domain.PaymentMethod
		want   bool
	}{
		{domain.MethodCash, false},
		{domain.MethodBankTransfer, true},
		{domain.MethodPOS, true},
		{domain.MethodOnlinePayment, true},
		{domain.MethodCheque, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.method), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.method.RequiresReference())
		})
	}
}

func TestPaymentMethod_IsValid(t *testing.T) {
	assert.True(t, domain.MethodCash.IsValid())
	assert.True(t, domain.MethodBankTransfer.IsValid())
	assert.False(t, domain.PaymentMethod("CRYPTO").IsValid())
	assert.False(t, domain.PaymentMethod("").IsValid())
}
