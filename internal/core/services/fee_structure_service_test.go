package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/schoolsuite/fee_ledger_app/internal/apperrors"
	"github.com/schoolsuite/fee_ledger_app/internal/core/domain"
	portssvc "github.com/schoolsuite/fee_ledger_app/internal/core/ports/services"
	"github.com/schoolsuite/fee_ledger_app/internal/core/services"
	"github.com/schoolsuite/fee_ledger_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type FeeStructureServiceTestSuite struct {
	suite.Suite
	mockRepo       *MockFeeStructureRepository
	mockStudentDir *MockStudentDirectory
	service        portssvc.FeeStructureSvcFacade
}

func (suite *FeeStructureServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockFeeStructureRepository)
	suite.mockStudentDir = new(MockStudentDirectory)
	suite.service = services.NewFeeStructureService(suite.mockRepo, suite.mockStudentDir)
}

func validUpsertRequest() dto.UpsertFeeStructureRequest {
	return dto.UpsertFeeStructureRequest{
		ClassID:         "JSS1A",
		Term:            "First Term",
		AcademicYear:    "2024/2025",
		TuitionFee:      decimal.NewFromInt(45000),
		DevelopmentLevy: decimal.NewFromInt(5000),
		ExamFee:         decimal.NewFromInt(2500),
		BooksFee:        decimal.NewFromInt(8000),
		UniformFee:      decimal.NewFromInt(6000),
		TransportFee:    decimal.NewFromInt(10000),
		SportsFee:       decimal.NewFromInt(1500),
	}
}

func (suite *FeeStructureServiceTestSuite) TestUpsertFeeStructure_Success() {
	ctx := context.Background()
	actorID := uuid.NewString()
	req := validUpsertRequest()

	suite.mockStudentDir.On("ClassExists", ctx, req.ClassID).Return(true, nil).Once()
	suite.mockRepo.On("FindFeeStructure", ctx, req.ClassID, req.Term, req.AcademicYear).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockRepo.On("UpsertFeeStructure", ctx, mock.MatchedBy(func(fs domain.FeeStructure) bool {
		return fs.ClassID == req.ClassID &&
			fs.TotalFee.Equal(decimal.NewFromInt(78000)) &&
			fs.CreatedBy == actorID &&
			fs.LastUpdatedBy == actorID
	})).Return(nil).Once()

	fs, err := suite.service.UpsertFeeStructure(ctx, req, actorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(fs)
	suite.True(decimal.NewFromInt(78000).Equal(fs.TotalFee))
	suite.NotEmpty(fs.FeeStructureID)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockStudentDir.AssertExpectations(suite.T())
}

func (suite *FeeStructureServiceTestSuite) TestUpsertFeeStructure_NegativeCategory() {
	ctx := context.Background()
	req := validUpsertRequest()
	req.ExamFee = decimal.NewFromInt(-1)

	fs, err := suite.service.UpsertFeeStructure(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(fs)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertFeeStructure", mock.Anything, mock.Anything)
}

func (suite *FeeStructureServiceTestSuite) TestUpsertFeeStructure_FractionalCategory() {
	ctx := context.Background()
	req := validUpsertRequest()
	req.TuitionFee = decimal.NewFromFloat(45000.50)

	fs, err := suite.service.UpsertFeeStructure(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(fs)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *FeeStructureServiceTestSuite) TestUpsertFeeStructure_UnknownClass() {
	ctx := context.Background()
	req := validUpsertRequest()

	suite.mockStudentDir.On("ClassExists", ctx, req.ClassID).Return(false, nil).Once()

	fs, err := suite.service.UpsertFeeStructure(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(fs)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpsertFeeStructure", mock.Anything, mock.Anything)
}

func (suite *FeeStructureServiceTestSuite) TestUpsertFeeStructure_ReplaceKeepsIdentityAndCreationAudit() {
	ctx := context.Background()
	actorID := uuid.NewString()
	req := validUpsertRequest()

	existing := &domain.FeeStructure{
		FeeStructureID: uuid.NewString(),
		ClassID:        req.ClassID,
		Term:           req.Term,
		AcademicYear:   req.AcademicYear,
	}
	existing.CreatedBy = "original-author"

	suite.mockStudentDir.On("ClassExists", ctx, req.ClassID).Return(true, nil).Once()
	suite.mockRepo.On("FindFeeStructure", ctx, req.ClassID, req.Term, req.AcademicYear).Return(existing, nil).Once()
	suite.mockRepo.On("UpsertFeeStructure", ctx, mock.MatchedBy(func(fs domain.FeeStructure) bool {
		return fs.FeeStructureID == existing.FeeStructureID &&
			fs.CreatedBy == "original-author" &&
			fs.LastUpdatedBy == actorID
	})).Return(nil).Once()

	fs, err := suite.service.UpsertFeeStructure(ctx, req, actorID)

	suite.Require().NoError(err)
	suite.Equal(existing.FeeStructureID, fs.FeeStructureID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *FeeStructureServiceTestSuite) TestGetFeeStructure_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("FindFeeStructure", ctx, "JSS9Z", "First Term", "2024/2025").Return(nil, apperrors.ErrNotFound).Once()

	fs, err := suite.service.GetFeeStructure(ctx, "JSS9Z", "First Term", "2024/2025")

	suite.Require().Error(err)
	suite.Nil(fs)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *FeeStructureServiceTestSuite) TestListFeeStructuresByYear_Success() {
	ctx := context.Background()
	expected := []domain.FeeStructure{
		{ClassID: "JSS1A", AcademicYear: "2024/2025"},
		{ClassID: "JSS1B", AcademicYear: "2024/2025"},
	}

	suite.mockRepo.On("ListFeeStructuresByYear", ctx, "2024/2025").Return(expected, nil).Once()

	structures, err := suite.service.ListFeeStructuresByYear(ctx, "2024/2025")

	suite.Require().NoError(err)
	suite.Len(structures, 2)
}

func TestFeeStructureServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeeStructureServiceTestSuite))
}
