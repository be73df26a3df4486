package service_test

import (
	"context"
	"errors"
	"testing"

	"schoolpay-backend/internal/database/models"
	apperrors "schoolpay-backend/internal/errors"
	"schoolpay-backend/internal/mocks"
	"schoolpay-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FeeServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockFeeRepo *mocks.MockFeeRepositoryInterface
	feeService  *service.FeeService
	validator   *validator.Validate
	ctx         context.Context
}

func (suite *FeeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockFeeRepo = mocks.NewMockFeeRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.feeService = service.NewFeeService(suite.mockFeeRepo, suite.validator)
	suite.ctx = context.Background()
}

func (suite *FeeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *FeeServiceTestSuite) TestCreate_Success() {
	req := &service.CreateFeeRequest{
		Title:       "First Term Tuition",
		Amount:      25000,
		Description: "Tuition for the first term",
		OrgID:       "org-1",
	}

	suite.mockFeeRepo.EXPECT().
		Create(suite.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, fee *models.Fee) error {
			fee.ID = "fee-1"
			return nil
		})

	resp, err := suite.feeService.Create(suite.ctx, req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), "fee-1", resp.ID)
	assert.Equal(suite.T(), float64(25000), resp.Amount)
	assert.Equal(suite.T(), "org-1", resp.OrgID)
}

func (suite *FeeServiceTestSuite) TestCreate_MissingFields() {
	req := &service.CreateFeeRequest{
		Title: "First Term Tuition",
	}

	resp, err := suite.feeService.Create(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *FeeServiceTestSuite) TestCreate_ZeroAmount() {
	req := &service.CreateFeeRequest{
		Title:       "First Term Tuition",
		Amount:      0,
		Description: "Tuition for the first term",
		OrgID:       "org-1",
	}

	resp, err := suite.feeService.Create(suite.ctx, req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *FeeServiceTestSuite) TestListByOrganization_Success() {
	fees := []models.Fee{
		{ID: "fee-1", Title: "First Term Tuition", Amount: 25000, Description: "Term 1", OrgID: "org-1"},
		{ID: "fee-2", Title: "PTA Levy", Amount: 2000, Description: "Annual levy", OrgID: "org-1"},
	}

	suite.mockFeeRepo.EXPECT().
		GetByOrganizationID(suite.ctx, "org-1").
		Return(fees, nil)

	resp, err := suite.feeService.ListByOrganization(suite.ctx, "org-1")

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "fee-1", resp[0].ID)
	assert.Equal(suite.T(), "org-1", resp[1].OrgID)
}

func (suite *FeeServiceTestSuite) TestListByOrganization_Empty() {
	suite.mockFeeRepo.EXPECT().
		GetByOrganizationID(suite.ctx, "org-1").
		Return([]models.Fee{}, nil)

	resp, err := suite.feeService.ListByOrganization(suite.ctx, "org-1")

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Len(suite.T(), resp, 0)
}

func (suite *FeeServiceTestSuite) TestUpdate_Success() {
	req := &service.UpdateFeeRequest{
		Title:       "First Term Tuition",
		Amount:      30000,
		Description: "Adjusted tuition",
	}

	suite.mockFeeRepo.EXPECT().
		Update(suite.ctx, "fee-1", map[string]interface{}{
			"title":       "First Term Tuition",
			"amount":      float64(30000),
			"description": "Adjusted tuition",
		}).
		Return(nil)

	err := suite.feeService.Update(suite.ctx, "fee-1", req)

	assert.NoError(suite.T(), err)
}

func (suite *FeeServiceTestSuite) TestUpdate_MissingFields() {
	req := &service.UpdateFeeRequest{
		Title: "First Term Tuition",
	}

	err := suite.feeService.Update(suite.ctx, "fee-1", req)

	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

func (suite *FeeServiceTestSuite) TestUpdate_NotFound() {
	req := &service.UpdateFeeRequest{
		Title:       "First Term Tuition",
		Amount:      30000,
		Description: "Adjusted tuition",
	}

	suite.mockFeeRepo.EXPECT().
		Update(suite.ctx, "missing", gomock.Any()).
		Return(apperrors.ErrFeeNotFound)

	err := suite.feeService.Update(suite.ctx, "missing", req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

func (suite *FeeServiceTestSuite) TestDelete_Success() {
	suite.mockFeeRepo.EXPECT().
		Delete(suite.ctx, "fee-1").
		Return(nil)

	err := suite.feeService.Delete(suite.ctx, "fee-1")

	assert.NoError(suite.T(), err)
}

func (suite *FeeServiceTestSuite) TestDelete_RepoError() {
	suite.mockFeeRepo.EXPECT().
		Delete(suite.ctx, "fee-1").
		Return(errors.New("delete failed"))

	err := suite.feeService.Delete(suite.ctx, "fee-1")

	assert.Error(suite.T(), err)
}

func TestFeeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(FeeServiceTestSuite))
}
