package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolsuite/fee_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock FeeStructureRepository ---

type MockFeeStructureRepository struct {
	mock.Mock
}

func (m *MockFeeStructureRepository) FindFeeStructure(ctx context.Context, classID, term, academicYear string) (*domain.FeeStructure, error) {
	args := m.Called(ctx, classID, term, academicYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeeStructure), args.Error(1)
}

func (m *MockFeeStructureRepository) ListFeeStructuresByYear(ctx context.Context, academicYear string) ([]domain.FeeStructure, error) {
	args := m.Called(ctx, academicYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeeStructure), args.Error(1)
}

func (m *MockFeeStructureRepository) UpsertFeeStructure(ctx context.Context, fs domain.FeeStructure) error {
	args := m.Called(ctx, fs)
	return args.Error(0)
}

// --- Mock PaymentRepository (with transaction support) ---

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPaymentsByStudent(ctx context.Context, studentID string, filter portsrepo.PaymentFilter) ([]domain.Payment, error) {
	args := m.Called(ctx, studentID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) SumVerifiedAmount(ctx context.Context, studentID, term, academicYear string) (decimal.Decimal, error) {
	args := m.Called(ctx, studentID, term, academicYear)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByIDForUpdate(ctx context.Context, tx pgx.Tx, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, tx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) UpdatePaymentStatusInTx(ctx context.Context, tx pgx.Tx, paymentID string, status domain.PaymentStatus, reason string, actorID string, now time.Time) error {
	args := m.Called(ctx, tx, paymentID, status, reason, actorID, now)
	return args.Error(0)
}

func (m *MockPaymentRepository) SumVerifiedAmountInTx(ctx context.Context, tx pgx.Tx, studentID, term, academicYear string) (decimal.Decimal, error) {
	args := m.Called(ctx, tx, studentID, term, academicYear)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockPaymentRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockPaymentRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock BalanceRepository ---

type MockBalanceRepository struct {
	mock.Mock
}

func (m *MockBalanceRepository) FindBalance(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error) {
	args := m.Called(ctx, studentID, term, academicYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentFeeBalance), args.Error(1)
}

func (m *MockBalanceRepository) ReplaceBalance(ctx context.Context, balance domain.StudentFeeBalance) error {
	args := m.Called(ctx, balance)
	return args.Error(0)
}

func (m *MockBalanceRepository) ReplaceBalanceInTx(ctx context.Context, tx pgx.Tx, balance domain.StudentFeeBalance) error {
	args := m.Called(ctx, tx, balance)
	return args.Error(0)
}

// --- Mock SettingsRepository ---

type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindSettings(ctx context.Context) (*domain.BankAccountSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccountSettings), args.Error(1)
}

func (m *MockSettingsRepository) ReplaceSettings(ctx context.Context, settings domain.BankAccountSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock StudentDirectory ---

type MockStudentDirectory struct {
	mock.Mock
}

func (m *MockStudentDirectory) ResolveStudentClass(ctx context.Context, studentID string) (string, error) {
	args := m.Called(ctx, studentID)
	return args.String(0), args.Error(1)
}

func (m *MockStudentDirectory) ClassExists(ctx context.Context, classID string) (bool, error) {
	args := m.Called(ctx, classID)
	return args.Bool(0), args.Error(1)
}

// --- Mock BalanceService ---

type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetBalance(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error) {
	args := m.Called(ctx, studentID, term, academicYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentFeeBalance), args.Error(1)
}

func (m *MockBalanceService) ComputeCurrent(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error) {
	args := m.Called(ctx, studentID, term, academicYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentFeeBalance), args.Error(1)
}

func (m *MockBalanceService) Recompute(ctx context.Context, studentID, term, academicYear string) (*domain.StudentFeeBalance, error) {
	args := m.Called(ctx, studentID, term, academicYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentFeeBalance), args.Error(1)
}

func (m *MockBalanceService) RecomputeInTx(ctx context.Context, tx pgx.Tx, studentID, term, academicYear string) (*domain.StudentFeeBalance, error) {
	args := m.Called(ctx, tx, studentID, term, academicYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudentFeeBalance), args.Error(1)
}
