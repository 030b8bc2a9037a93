package services_test

import (
	"context"
	"testing"

	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	portssvc "github.com/schoolsuite/fee_ledger_app/internal/core/ports/services"
	"github.com/schoolsuite/fee_ledger_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BalanceServiceTestSuite struct {
	suite.Suite
	mockFeeStructureRepo *MockFeeStructureRepository
	mockPaymentRepo      *MockPaymentRepository
	mockBalanceRepo      *MockBalanceRepository
	mockStudentDir       *MockStudentDirectory
	service              portssvc.BalanceSvcFacade
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockFeeStructureRepo = new(MockFeeStructureRepository)
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockBalanceRepo = new(MockBalanceRepository)
	suite.mockStudentDir = new(MockStudentDirectory)
	suite.service = services.NewBalanceService(suite.mockFeeStructureRepo, suite.mockPaymentRepo, suite.mockBalanceRepo, suite.mockStudentDir)
}

func (suite *BalanceServiceTestSuite) TestComputeCurrent_PartialPayment() {
	ctx := context.Background()
	studentID, term, year := "STU-001", "First Term", "2024/2025"

	suite.mockPaymentRepo.On("SumVerifiedAmount", ctx, studentID, term, year).Return(decimal.NewFromInt(20000), nil).Once()
	suite.mockStudentDir.On("ResolveStudentClass", ctx, studentID).Return("JSS1A", nil).Once()
	suite.mockFeeStructureRepo.On("FindFeeStructure", ctx, "JSS1A", term, year).
		Return(&domain.FeeStructure{ClassID: "JSS1A", TotalFee: decimal.NewFromInt(50000)}, nil).Once()

	balance, err := suite.service.ComputeCurrent(ctx, studentID, term, year)

	suite.Require().NoError(err)
	suite.Require().NotNil(balance)
	suite.Equal("JSS1A", balance.ClassID)
	suite.True(decimal.NewFromInt(50000).Equal(balance.TotalFeeRequired))
	suite.True(decimal.NewFromInt(20000).Equal(balance.TotalPaid))
	suite.True(decimal.NewFromInt(30000).Equal(balance.Balance))
	suite.Equal(domain.BalancePartial, balance.Status)

	// Nothing is persisted on a read-only derivation.
	suite.mockBalanceRepo.AssertNotCalled(suite.T(), "ReplaceBalance", mock.Anything, mock.Anything)
	suite.mockPaymentRepo.AssertExpectations(suite.T())
	suite.mockStudentDir.AssertExpectations(suite.T())
	suite.mockFeeStructureRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestComputeCurrent_NoFeeStructureMeansZeroRequired() {
	ctx := context.Background()
	studentID, term, year := "STU-002", "First Term", "2024/2025"

	suite.mockPaymentRepo.On("SumVerifiedAmount", ctx, studentID, term, year).Return(decimal.Zero, nil).Once()
	suite.mockStudentDir.On("ResolveStudentClass", ctx, studentID).Return("JSS2B", nil).Once()
	suite.mockFeeStructureRepo.On("FindFeeStructure", ctx, "JSS2B", term, year).Return(nil, apperrors.ErrNotFound).Once()

	balance, err := suite.service.ComputeCurrent(ctx, studentID, term, year)

	suite.Require().NoError(err)
	suite.True(balance.TotalFeeRequired.IsZero())
	suite.True(balance.Balance.IsZero())
	suite.Equal(domain.BalanceUnpaid, balance.Status)
}

func (suite *BalanceServiceTestSuite) TestComputeCurrent_OverPaymentGoesNegative() {
	ctx := context.Background()
	studentID, term, year := "STU-003", "Second Term", "2024/2025"

	suite.mockPaymentRepo.On("SumVerifiedAmount", ctx, studentID, term, year).Return(decimal.NewFromInt(60000), nil).Once()
	suite.mockStudentDir.On("ResolveStudentClass", ctx, studentID).Return("SS1A", nil).Once()
	suite.mockFeeStructureRepo.On("FindFeeStructure", ctx, "SS1A", term, year).
		Return(&domain.FeeStructure{ClassID: "SS1A", TotalFee: decimal.NewFromInt(50000)}, nil).Once()

	balance, err := suite.service.ComputeCurrent(ctx, studentID, term, year)

	suite.Require().NoError(err)
	suite.True(decimal.NewFromInt(-10000).Equal(balance.Balance))
	suite.Equal(domain.BalancePaid, balance.Status)
}

func (suite *BalanceServiceTestSuite) TestComputeCurrent_UnknownStudent() {
	ctx := context.Background()
	studentID, term, year := "STU-404", "First Term", "2024/2025"

	suite.mockPaymentRepo.On("SumVerifiedAmount", ctx, studentID, term, year).Return(decimal.Zero, nil).Once()
	suite.mockStudentDir.On("ResolveStudentClass", ctx, studentID).Return("", apperrors.ErrNotFound).Once()

	balance, err := suite.service.ComputeCurrent(ctx, studentID, term, year)

	suite.Require().Error(err)
	suite.Nil(balance)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BalanceServiceTestSuite) TestRecompute_PersistsDerivedRow() {
	ctx := context.Background()
	studentID, term, year := "STU-004", "First Term", "2024/2025"

	suite.mockPaymentRepo.On("SumVerifiedAmount", ctx, studentID, term, year).Return(decimal.NewFromInt(50000), nil).Once()
	suite.mockStudentDir.On("ResolveStudentClass", ctx, studentID).Return("JSS3C", nil).Once()
	suite.mockFeeStructureRepo.On("FindFeeStructure", ctx, "JSS3C", term, year).
		Return(&domain.FeeStructure{ClassID: "JSS3C", TotalFee: decimal.NewFromInt(50000)}, nil).Once()
	suite.mockBalanceRepo.On("ReplaceBalance", ctx, mock.MatchedBy(func(b domain.StudentFeeBalance) bool {
		return b.StudentID == studentID &&
			b.Status == domain.BalancePaid &&
			b.Balance.IsZero() &&
			b.TotalPaid.Equal(decimal.NewFromInt(50000))
	})).Return(nil).Once()

	balance, err := suite.service.Recompute(ctx, studentID, term, year)

	suite.Require().NoError(err)
	suite.Equal(domain.BalancePaid, balance.Status)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestRecomputeInTx_UsesTransactionalReads() {
	ctx := context.Background()
	studentID, term, year := "STU-005", "Third Term", "2024/2025"

	suite.mockPaymentRepo.On("SumVerifiedAmountInTx", ctx, mock.Anything, studentID, term, year).Return(decimal.NewFromInt(10000), nil).Once()
	suite.mockStudentDir.On("ResolveStudentClass", ctx, studentID).Return("SS2B", nil).Once()
	suite.mockFeeStructureRepo.On("FindFeeStructure", ctx, "SS2B", term, year).
		Return(&domain.FeeStructure{ClassID: "SS2B", TotalFee: decimal.NewFromInt(40000)}, nil).Once()
	suite.mockBalanceRepo.On("ReplaceBalanceInTx", ctx, mock.Anything, mock.MatchedBy(func(b domain.StudentFeeBalance) bool {
		return b.Status == domain.BalancePartial && b.Balance.Equal(decimal.NewFromInt(30000))
	})).Return(nil).Once()

	balance, err := suite.service.RecomputeInTx(ctx, nil, studentID, term, year)

	suite.Require().NoError(err)
	suite.Equal(domain.BalancePartial, balance.Status)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SumVerifiedAmount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockBalanceRepo.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetBalance_ReturnsCachedRow() {
	ctx := context.Background()
	studentID, term, year := "STU-006", "First Term", "2024/2025"
	cached := &domain.StudentFeeBalance{StudentID: studentID, Status: domain.BalancePartial}

	suite.mockBalanceRepo.On("FindBalance", ctx, studentID, term, year).Return(cached, nil).Once()

	balance, err := suite.service.GetBalance(ctx, studentID, term, year)

	suite.Require().NoError(err)
	suite.Equal(cached, balance)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "SumVerifiedAmount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestGetBalance_DerivesWhenNeverReconciled() {
	ctx := context.Background()
	studentID, term, year := "STU-007", "First Term", "2024/2025"

	suite.mockBalanceRepo.On("FindBalance", ctx, studentID, term, year).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockPaymentRepo.On("SumVerifiedAmount", ctx, studentID, term, year).Return(decimal.Zero, nil).Once()
	suite.mockStudentDir.On("ResolveStudentClass", ctx, studentID).Return("JSS1A", nil).Once()
	suite.mockFeeStructureRepo.On("FindFeeStructure", ctx, "JSS1A", term, year).
		Return(&domain.FeeStructure{ClassID: "JSS1A", TotalFee: decimal.NewFromInt(50000)}, nil).Once()

	balance, err := suite.service.GetBalance(ctx, studentID, term, year)

	suite.Require().NoError(err)
	suite.Equal(domain.BalanceUnpaid, balance.Status)
	suite.True(decimal.NewFromInt(50000).Equal(balance.Balance))
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
