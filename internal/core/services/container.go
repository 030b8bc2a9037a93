package services

import (
	portsrepo "github.com/schoolsuite/fee_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolsuite/fee_ledger_app/internal/core/ports/services"
)

// NewServiceContainer wires all services with their repository dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, accountNumberLength int) *portssvc.ServiceContainer {
	balanceSvc := NewBalanceService(repos.FeeStructureRepo, repos.PaymentRepo, repos.BalanceRepo, repos.StudentDir)

	return &portssvc.ServiceContainer{
		FeeStructure: NewFeeStructureService(repos.FeeStructureRepo, repos.StudentDir),
		Payment:      NewPaymentService(repos.PaymentRepo, repos.SettingsRepo, balanceSvc),
		Verification: NewVerificationService(repos.PaymentRepo, balanceSvc),
		Balance:      balanceSvc,
		Settings:     NewSettingsService(repos.SettingsRepo, accountNumberLength),
	}
}
