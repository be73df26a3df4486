package service_test

import (
	"context"
	"errors"
	"testing"

	"schoolpay-backend/internal/database/models"
	"schoolpay-backend/internal/mocks"
	"schoolpay-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SupportServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockSupportRepo *mocks.MockSupportRepositoryInterface
	supportService  *service.SupportService
	validator       *validator.Validate
	ctx             context.Context
}

func (suite *SupportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSupportRepo = mocks.NewMockSupportRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.supportService = service.NewSupportService(suite.mockSupportRepo, suite.validator)
	suite.ctx = context.Background()
}

func (suite *SupportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SupportServiceTestSuite) TestSubmit_Success() {
	req := &service.CreateComplaintRequest{
		Name:      "Ada Okafor",
		Email:     "ada@example.com",
		Complaint: "My payment was debited twice.",
	}

	suite.mockSupportRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, complaint *models.SupportComplaint) error {
			assert.Equal(suite.T(), "Ada Okafor", complaint.Name)
			assert.Equal(suite.T(), "My payment was debited twice.", complaint.Complaint)
			return nil
		})

	err := suite.supportService.Submit(suite.ctx, req)

	assert.NoError(suite.T(), err)
}

func (suite *SupportServiceTestSuite) TestSubmit_MissingFields() {
	req := &service.CreateComplaintRequest{
		Name: "Ada Okafor",
	}

	err := suite.supportService.Submit(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *SupportServiceTestSuite) TestSubmit_InvalidEmail() {
	req := &service.CreateComplaintRequest{
		Name:      "Ada Okafor",
		Email:     "not-an-email",
		Complaint: "My payment was debited twice.",
	}

	err := suite.supportService.Submit(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *SupportServiceTestSuite) TestSubmit_RepoError() {
	req := &service.CreateComplaintRequest{
		Name:      "Ada Okafor",
		Email:     "ada@example.com",
		Complaint: "My payment was debited twice.",
	}

	suite.mockSupportRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		Return(errors.New("write failed"))

	err := suite.supportService.Submit(suite.ctx, req)

	assert.Error(suite.T(), err)
}

func TestSupportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SupportServiceTestSuite))
}
