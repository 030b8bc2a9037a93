package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	portssvc "github.com/schoolsuite/fee_ledger_app/internal/core/ports/services"
	"github.com/schoolsuite/fee_ledger_app/internal/core/services"
	"github.com/schoolsuite/fee_ledger_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testAccountNumberLength = 10

type SettingsServiceTestSuite struct {
	suite.Suite
	mockRepo *MockSettingsRepository
	service  portssvc.SettingsSvcFacade
}

func (suite *SettingsServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockSettingsRepository)
	suite.service = services.NewSettingsService(suite.mockRepo, testAccountNumberLength)
}

func validSettingsRequest() dto.UpdateBankSettingsRequest {
	return dto.UpdateBankSettingsRequest{
		BankName:      "First Bank",
		AccountName:   "Sunrise College",
		AccountNumber: "0123456789",
		EnabledMethods: dto.EnabledMethodsPayload{
			BankTransfer:  true,
			OnlinePayment: true,
			Cash:          true,
		},
	}
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	req := validSettingsRequest()

	suite.mockRepo.On("FindSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("ReplaceSettings", ctx, mock.MatchedBy(func(s domain.BankAccountSettings) bool {
		return s.BankName == req.BankName &&
			s.AccountNumber == req.AccountNumber &&
			s.LastUpdatedBy == actorID
	})).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, req, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(settings)
	suite.Equal(req.BankName, settings.BankName)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_KeepsCreationAudit() {
	ctx := context.Background()
	actorID := uuid.NewString()
	req := validSettingsRequest()

	createdAt := time.Date(2024, 1, 15, 9, 0, 0, 0, time.UTC)
	existing := &domain.BankAccountSettings{BankName: "Old Bank"}
	existing.CreatedAt = createdAt
	existing.CreatedBy = "original-admin"

	suite.mockRepo.On("FindSettings", ctx).Return(existing, nil).Once()
	suite.mockRepo.On("ReplaceSettings", ctx, mock.MatchedBy(func(s domain.BankAccountSettings) bool {
		return s.CreatedAt.Equal(createdAt) && s.CreatedBy == "original-admin" && s.LastUpdatedBy == actorID
	})).Return(nil).Once()

	settings, err := suite.service.UpdateSettings(ctx, req, actorID)

	suite.Require().NoError(err)
	suite.Equal("original-admin", settings.CreatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_BlankBankName() {
	ctx := context.Background()
	req := validSettingsRequest()
	req.BankName = "   "

	settings, err := suite.service.UpdateSettings(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ReplaceSettings", mock.Anything, mock.Anything)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_WrongAccountNumberLength() {
	ctx := context.Background()
	req := validSettingsRequest()
	req.AccountNumber = "12345"

	settings, err := suite.service.UpdateSettings(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SettingsServiceTestSuite) TestUpdateSettings_NonNumericAccountNumber() {
	ctx := context.Background()
	req := validSettingsRequest()
	req.AccountNumber = "01234ABCDE"

	settings, err := suite.service.UpdateSettings(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *SettingsServiceTestSuite) TestGetSettings_NotConfigured() {
	ctx := context.Background()

	suite.mockRepo.On("FindSettings", ctx).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := suite.service.GetSettings(ctx)

	suite.Require().Error(err)
	suite.Nil(settings)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestSettingsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceTestSuite))
}
