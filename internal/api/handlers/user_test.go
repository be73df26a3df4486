package handlers

import (
	"fmt"
	"net/http"
	"testing"

	apperrors "schoolpay-backend/internal/errors"
	"schoolpay-backend/internal/mocks"
	"schoolpay-backend/internal/service"
	"schoolpay-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// UserHandlerTestSuite defines the test suite for UserHandler
type UserHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserService *mocks.MockUserServiceInterface
	handler         *UserHandler
	httpSuite       *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *UserHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserService = mocks.NewMockUserServiceInterface(suite.ctrl)

	suite.handler = NewUserHandler(suite.mockUserService)
	suite.httpSuite = testutils.SetupHTTPTest()

	api := suite.httpSuite.Router.Group("/api")
	{
		api.POST("/users", suite.handler.CreateUser)
		api.GET("/user/:id", suite.handler.GetUser)
		api.GET("/contacts/:uid", suite.handler.GetContacts)
	}
}

// TearDownTest cleans up after each test
func (suite *UserHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateUser tests registering a user
func (suite *UserHandlerTestSuite) TestCreateUser() {
	requestBody := map[string]interface{}{
		"user_id":   "uid-123",
		"surname":   "Okafor",
		"firstname": "Ada",
		"email":     "ada@example.com",
		"phone":     "+2348012345678",
	}

	expectedResponse := &service.CreateUserResponse{
		ID:        "uid-123",
		Surname:   "Okafor",
		Firstname: "Ada",
		Email:     "ada@example.com",
		Phone:     "+2348012345678",
	}

	suite.mockUserService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.CreateUserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "uid-123", response.ID)
	assert.Equal(suite.T(), "Okafor", response.Surname)
}

// TestCreateUserMissingFields tests that validation failures map to 400
func (suite *UserHandlerTestSuite) TestCreateUserMissingFields() {
	requestBody := map[string]interface{}{
		"user_id": "uid-123",
	}

	verr := validator.New().Struct(&service.CreateUserRequest{UserID: "uid-123"})
	suite.mockUserService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("validation failed: %w", verr)).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "One of the data is not captured!")
}

// TestCreateUserAlreadyExists tests registering a duplicate uid
func (suite *UserHandlerTestSuite) TestCreateUserAlreadyExists() {
	requestBody := map[string]interface{}{
		"user_id":   "uid-123",
		"surname":   "Okafor",
		"firstname": "Ada",
		"email":     "ada@example.com",
		"phone":     "+2348012345678",
	}

	suite.mockUserService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, apperrors.ErrUserExists).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users", requestBody)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "user already exists")
}

// TestCreateUserServiceError tests that store failures hide detail from the client
func (suite *UserHandlerTestSuite) TestCreateUserServiceError() {
	requestBody := map[string]interface{}{
		"user_id":   "uid-123",
		"surname":   "Okafor",
		"firstname": "Ada",
		"email":     "ada@example.com",
		"phone":     "+2348012345678",
	}

	suite.mockUserService.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("connection reset by peer")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/users", requestBody)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to Add User to database")
	assert.NotContains(suite.T(), recorder.Body.String(), "connection reset")
}

// TestGetUser tests fetching a user by uid
func (suite *UserHandlerTestSuite) TestGetUser() {
	expectedResponse := &service.UserResponse{
		ID:        "uid-123",
		Email:     "ada@example.com",
		Surname:   "Okafor",
		Firstname: "Ada",
		Phone:     "+2348012345678",
		OrgStatus: "false",
		CreatedAt: "2023-01-01T00:00:00Z",
	}

	suite.mockUserService.EXPECT().
		GetByID(gomock.Any(), "uid-123").
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/user/uid-123", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.UserResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "uid-123", response.ID)
	assert.Equal(suite.T(), "false", response.OrgStatus)
}

// TestGetUserNotFound tests fetching a non-existent user
func (suite *UserHandlerTestSuite) TestGetUserNotFound() {
	suite.mockUserService.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, apperrors.ErrUserNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/user/missing", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "user not found")
}

// TestGetContacts tests listing chat contacts
func (suite *UserHandlerTestSuite) TestGetContacts() {
	expectedContacts := []service.ContactResponse{
		{ID: "uid-456", Surname: "Bello", Firstname: "Musa", Email: "musa@example.com"},
		{ID: "uid-789", Surname: "Eze", Firstname: "Ngozi", Email: "ngozi@example.com"},
	}

	suite.mockUserService.EXPECT().
		ListContacts(gomock.Any(), "uid-123").
		Return(expectedContacts, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/contacts/uid-123", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.ContactResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
	assert.Equal(suite.T(), "uid-456", response[0].ID)
}

// TestGetContactsEmpty tests that no contacts yields an empty list, not null
func (suite *UserHandlerTestSuite) TestGetContactsEmpty() {
	suite.mockUserService.EXPECT().
		ListContacts(gomock.Any(), "uid-123").
		Return([]service.ContactResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/contacts/uid-123", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), "[]", recorder.Body.String())
}

// TestUserHandlerTestSuite runs the test suite
func TestUserHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}
