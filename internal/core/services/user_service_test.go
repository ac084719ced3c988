package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/apperrors"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
	portssvc "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/services"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/services"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/dto"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) DeleteUserWithTimesheets(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error {
	args := m.Called(ctx, userID, deletedAt, deletedBy)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo *MockUserRepository
	service      portssvc.UserSvcFacade
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewUserService(suite.mockUserRepo)
}

// --- CreateEmployee Tests ---

func (suite *UserServiceTestSuite) TestCreateEmployee_Success() {
	ctx := context.Background()
	creatorID := uuid.NewString()
	req := dto.CreateEmployeeRequest{
		Username:   "jdoe",
		Password:   "password123",
		Name:       "Jane Doe",
		Email:      "jdoe@example.com",
		Department: "Engineering",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Username == req.Username &&
			user.PasswordHash != req.Password &&
			user.Role == domain.RoleEmployee &&
			user.IsActive
	})).Return(nil).Once()

	created, err := suite.service.CreateEmployee(ctx, req, creatorID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.Equal(req.Username, created.Username)
	suite.NotEmpty(created.UserID)
	suite.Equal(domain.RoleEmployee, created.Role)
	suite.Equal(creatorID, created.CreatedBy)
	suite.True(utils.CheckPasswordHash(req.Password, created.PasswordHash))

	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateEmployee_AdminRoleHonoured() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Username: "boss",
		Password: "password123",
		Name:     "The Boss",
		Email:    "boss@example.com",
		Role:     "admin",
	}

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Role == domain.RoleAdmin
	})).Return(nil).Once()

	created, err := suite.service.CreateEmployee(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(domain.RoleAdmin, created.Role)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestCreateEmployee_DuplicateUsername() {
	ctx := context.Background()
	req := dto.CreateEmployeeRequest{
		Username: "taken",
		Password: "password123",
		Name:     "Someone",
		Email:    "someone@example.com",
	}
	existing := &domain.User{UserID: uuid.NewString(), Username: "taken"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, req.Username).Return(existing, nil).Once()

	created, err := suite.service.CreateEmployee(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(created)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser")
}

// --- UpdateEmployee Tests ---

func (suite *UserServiceTestSuite) TestUpdateEmployee_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	adminID := uuid.NewString()
	newName := "Renamed"
	existing := &domain.User{UserID: userID, Name: "Original", IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()
	suite.mockUserRepo.On("UpdateUser", ctx, mock.MatchedBy(func(user domain.User) bool {
		return user.Name == newName && user.LastUpdatedBy == adminID
	})).Return(nil).Once()

	updated, err := suite.service.UpdateEmployee(ctx, userID, dto.UpdateEmployeeRequest{Name: &newName}, adminID)

	suite.Require().NoError(err)
	suite.Equal(newName, updated.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestUpdateEmployee_NoChangesSkipsWrite() {
	ctx := context.Background()
	userID := uuid.NewString()
	sameName := "Original"
	existing := &domain.User{UserID: userID, Name: sameName, IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(existing, nil).Once()

	updated, err := suite.service.UpdateEmployee(ctx, userID, dto.UpdateEmployeeRequest{Name: &sameName}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Equal(existing, updated)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "UpdateUser")
}

func (suite *UserServiceTestSuite) TestUpdateEmployee_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()
	name := "Whoever"

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	updated, err := suite.service.UpdateEmployee(ctx, userID, dto.UpdateEmployeeRequest{Name: &name}, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(updated)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- DeleteEmployee Tests ---

func (suite *UserServiceTestSuite) TestDeleteEmployee_CascadesToRepo() {
	ctx := context.Background()
	userID := uuid.NewString()
	adminID := uuid.NewString()

	suite.mockUserRepo.On("DeleteUserWithTimesheets", ctx, userID, mock.AnythingOfType("time.Time"), adminID).Return(nil).Once()

	err := suite.service.DeleteEmployee(ctx, userID, adminID)

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestDeleteEmployee_NotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("DeleteUserWithTimesheets", ctx, userID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("string")).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteEmployee(ctx, userID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

// --- AuthenticateUser Tests ---

func (suite *UserServiceTestSuite) TestAuthenticateUser_Success() {
	ctx := context.Background()
	password := "correct-horse"
	hash, err := utils.HashPassword(password)
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "jdoe", PasswordHash: hash, IsActive: true}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "jdoe").Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "jdoe", password)

	suite.Require().NoError(err)
	suite.Equal(user.UserID, authed.UserID)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("right-password")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "jdoe", PasswordHash: hash, IsActive: true}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "jdoe").Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "jdoe", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_UnknownUsername() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "ghost", "whatever")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *UserServiceTestSuite) TestAuthenticateUser_InactiveAccount() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	user := &domain.User{UserID: uuid.NewString(), Username: "gone", PasswordHash: hash, IsActive: false}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "gone").Return(user, nil).Once()

	authed, err := suite.service.AuthenticateUser(ctx, "gone", "password123")

	suite.Require().Error(err)
	suite.Nil(authed)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

// --- ListEmployees Tests ---

func (suite *UserServiceTestSuite) TestListEmployees_Success() {
	ctx := context.Background()
	expected := []domain.User{
		{UserID: uuid.NewString(), Name: "One"},
		{UserID: uuid.NewString(), Name: "Two"},
	}

	suite.mockUserRepo.On("FindUsers", ctx, 20, 0).Return(expected, nil).Once()

	users, err := suite.service.ListEmployees(ctx, 20, 0)

	suite.Require().NoError(err)
	suite.Len(users, 2)
	assert.Equal(suite.T(), expected, users)
}

func TestUserService(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
