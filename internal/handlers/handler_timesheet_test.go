package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/naveenakasaragadda1/Timesheet-Server/internal/apperrors"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/domain"
	portssvc "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/services"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/core/services"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/dto"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/handlers"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/utils"
	"github.com/naveenakasaragadda1/Timesheet-Server/pkg/config"
)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListEmployees(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateEmployee(ctx context.Context, userID string, req dto.UpdateEmployeeRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteEmployee(ctx context.Context, userID string, requestingUserID string) error {
	args := m.Called(ctx, userID, requestingUserID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TimesheetService ---
type MockTimesheetService struct {
	mock.Mock
}

func (m *MockTimesheetService) CreateTimesheet(ctx context.Context, ownerID string, req dto.CreateTimesheetRequest) (*domain.Timesheet, error) {
	args := m.Called(ctx, ownerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Timesheet), args.Error(1)
}

func (m *MockTimesheetService) UpdateTimesheet(ctx context.Context, timesheetID string, requesterID string, req dto.UpdateTimesheetRequest) (*domain.Timesheet, error) {
	args := m.Called(ctx, timesheetID, requesterID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Timesheet), args.Error(1)
}

func (m *MockTimesheetService) DeleteTimesheet(ctx context.Context, timesheetID string, requesterID string) error {
	args := m.Called(ctx, timesheetID, requesterID)
	return args.Error(0)
}

func (m *MockTimesheetService) ListOwnTimesheets(ctx context.Context, ownerID string, filter domain.TimesheetFilter) ([]domain.Timesheet, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Timesheet), args.Error(1)
}

func (m *MockTimesheetService) ExportOwnTimesheets(ctx context.Context, ownerID string, filter domain.TimesheetFilter) ([]domain.TimesheetExportRow, error) {
	args := m.Called(ctx, ownerID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimesheetExportRow), args.Error(1)
}

func (m *MockTimesheetService) ListTimesheets(ctx context.Context, filter domain.TimesheetFilter) ([]domain.Timesheet, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Timesheet), args.Error(1)
}

func (m *MockTimesheetService) ReviewTimesheet(ctx context.Context, timesheetID string, reviewerID string, req dto.ReviewTimesheetRequest) (*domain.Timesheet, error) {
	args := m.Called(ctx, timesheetID, reviewerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Timesheet), args.Error(1)
}

func (m *MockTimesheetService) GetDashboardSummary(ctx context.Context) (*domain.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

func (m *MockTimesheetService) ExportTimesheets(ctx context.Context, filter domain.TimesheetFilter) ([]domain.TimesheetExportRow, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimesheetExportRow), args.Error(1)
}

func (m *MockTimesheetService) ExportTimesheet(ctx context.Context, timesheetID string) (*domain.TimesheetExportRow, error) {
	args := m.Called(ctx, timesheetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimesheetExportRow), args.Error(1)
}

var _ portssvc.TimesheetSvcFacade = (*MockTimesheetService)(nil)

// --- Test Suite ---
type TimesheetHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockUserService      *MockUserService
	mockTimesheetService *MockTimesheetService
	jwtSecret            string
}

func (suite *TimesheetHandlerTestSuite) generateTestToken(userID, role string) string {
	token, err := utils.GenerateJWT(userID, role, suite.jwtSecret, time.Hour, "test")
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return token
}

func (suite *TimesheetHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidators()

	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockUserService = new(MockUserService)
	suite.mockTimesheetService = new(MockTimesheetService)

	cfg := &config.Config{
		JWTSecret:         suite.jwtSecret,
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "test",
		IsProduction:      true, // keep swagger routes out of the test router
	}
	container := &portssvc.ServiceContainer{
		User:      suite.mockUserService,
		Timesheet: suite.mockTimesheetService,
		Exporter:  services.NewExportService(),
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

func (suite *TimesheetHandlerTestSuite) doJSON(method, url, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TimesheetHandlerTestSuite) TestLogin_Success() {
	user := &domain.User{
		UserID:   uuid.NewString(),
		Username: "jdoe",
		Name:     "Jane Doe",
		Role:     domain.RoleEmployee,
		IsActive: true,
	}

	suite.mockUserService.On("AuthenticateUser", mock.Anything, "jdoe", "password123").Return(user, nil).Once()

	w := suite.doJSON(http.MethodPost, "/auth/login", "", map[string]string{"username": "jdoe", "password": "password123"})

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.LoginResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.NotEmpty(resp.Token)
	suite.Equal(user.UserID, resp.User.UserID)

	claims, err := utils.ParseAndValidateJWT(resp.Token, suite.jwtSecret)
	suite.Require().NoError(err)
	suite.Equal(user.UserID, claims.Subject)
	suite.Equal("employee", claims.Role)
}

func (suite *TimesheetHandlerTestSuite) TestLogin_BadCredentials() {
	suite.mockUserService.On("AuthenticateUser", mock.Anything, "jdoe", "wrong").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodPost, "/auth/login", "", map[string]string{"username": "jdoe", "password": "wrong"})

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *TimesheetHandlerTestSuite) TestCreateTimesheet_Success() {
	ownerID := uuid.NewString()
	created := &domain.Timesheet{
		TimesheetID: uuid.NewString(),
		UserID:      ownerID,
		WorkDate:    time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		PlannedWork: "Ship feature",
		ActualWork:  "Shipped feature",
		Status:      domain.StatusPending,
	}

	suite.mockTimesheetService.On("CreateTimesheet", mock.Anything, ownerID, mock.MatchedBy(func(req dto.CreateTimesheetRequest) bool {
		return req.PlannedWork == "Ship feature"
	})).Return(created, nil).Once()

	body := map[string]string{
		"date":        "2025-06-02",
		"plannedWork": "Ship feature",
		"actualWork":  "Shipped feature",
	}
	w := suite.doJSON(http.MethodPost, "/timesheets", suite.generateTestToken(ownerID, "employee"), body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TimesheetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.TimesheetID, resp.TimesheetID)
	suite.Equal("pending", resp.Status)
	suite.mockTimesheetService.AssertExpectations(suite.T())
}

func (suite *TimesheetHandlerTestSuite) TestCreateTimesheet_DuplicateDate() {
	ownerID := uuid.NewString()

	suite.mockTimesheetService.On("CreateTimesheet", mock.Anything, ownerID, mock.AnythingOfType("dto.CreateTimesheetRequest")).
		Return(nil, apperrors.ErrDuplicate).Once()

	body := map[string]string{
		"date":        "2025-06-02",
		"plannedWork": "Ship feature",
		"actualWork":  "Shipped feature",
	}
	w := suite.doJSON(http.MethodPost, "/timesheets", suite.generateTestToken(ownerID, "employee"), body)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TimesheetHandlerTestSuite) TestCreateTimesheet_MissingToken() {
	w := suite.doJSON(http.MethodPost, "/timesheets", "", map[string]string{"date": "2025-06-02"})
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockTimesheetService.AssertNotCalled(suite.T(), "CreateTimesheet")
}

func (suite *TimesheetHandlerTestSuite) TestListOwnTimesheets_PassesFilters() {
	ownerID := uuid.NewString()

	suite.mockTimesheetService.On("ListOwnTimesheets", mock.Anything, ownerID, mock.MatchedBy(func(f domain.TimesheetFilter) bool {
		return f.Status == domain.StatusRejected && f.Limit == 10
	})).Return([]domain.Timesheet{}, nil).Once()

	w := suite.doJSON(http.MethodGet, "/timesheets?status=rejected&limit=10", suite.generateTestToken(ownerID, "employee"), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockTimesheetService.AssertExpectations(suite.T())
}

func (suite *TimesheetHandlerTestSuite) TestUpdateTimesheet_InvalidState() {
	ownerID := uuid.NewString()
	tsID := uuid.NewString()

	suite.mockTimesheetService.On("UpdateTimesheet", mock.Anything, tsID, ownerID, mock.AnythingOfType("dto.UpdateTimesheetRequest")).
		Return(nil, apperrors.ErrInvalidState).Once()

	body := map[string]string{"plannedWork": "x", "actualWork": "y"}
	w := suite.doJSON(http.MethodPut, "/timesheets/"+tsID, suite.generateTestToken(ownerID, "employee"), body)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TimesheetHandlerTestSuite) TestDeleteTimesheet_Success() {
	ownerID := uuid.NewString()
	tsID := uuid.NewString()

	suite.mockTimesheetService.On("DeleteTimesheet", mock.Anything, tsID, ownerID).Return(nil).Once()

	w := suite.doJSON(http.MethodDelete, "/timesheets/"+tsID, suite.generateTestToken(ownerID, "employee"), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *TimesheetHandlerTestSuite) TestExportOwnCSV_AscendingAttachment() {
	ownerID := uuid.NewString()
	rows := []domain.TimesheetExportRow{
		{
			Timesheet: domain.Timesheet{
				TimesheetID:  uuid.NewString(),
				UserID:       ownerID,
				EmployeeName: "Jane Doe",
				WorkDate:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
				PlannedWork:  "Plan",
				ActualWork:   "Done",
				Status:       domain.StatusAccepted,
			},
			EmployeeEmail: "jane@example.com",
		},
	}

	suite.mockTimesheetService.On("ExportOwnTimesheets", mock.Anything, ownerID, mock.MatchedBy(func(f domain.TimesheetFilter) bool {
		return f.SortAsc && f.Limit == 0
	})).Return(rows, nil).Once()

	w := suite.doJSON(http.MethodGet, "/timesheets/export/csv", suite.generateTestToken(ownerID, "employee"), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "attachment")
	suite.Contains(w.Body.String(), "employeeName")
	suite.Contains(w.Body.String(), "Jane Doe")
	suite.mockTimesheetService.AssertExpectations(suite.T())
}

// --- Admin tier ---

func (suite *TimesheetHandlerTestSuite) TestReviewTimesheet_Success() {
	adminID := uuid.NewString()
	tsID := uuid.NewString()
	reviewed := &domain.Timesheet{
		TimesheetID:   tsID,
		UserID:        uuid.NewString(),
		Status:        domain.StatusAccepted,
		AdminComments: "Looks good",
		ReviewerID:    &adminID,
	}

	suite.mockTimesheetService.On("ReviewTimesheet", mock.Anything, tsID, adminID, mock.MatchedBy(func(req dto.ReviewTimesheetRequest) bool {
		return req.Status == "accepted"
	})).Return(reviewed, nil).Once()

	body := map[string]string{"status": "accepted", "adminComments": "Looks good"}
	w := suite.doJSON(http.MethodPut, "/admin/timesheets/"+tsID+"/review", suite.generateTestToken(adminID, "admin"), body)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TimesheetResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("accepted", resp.Status)
	suite.mockTimesheetService.AssertExpectations(suite.T())
}

func (suite *TimesheetHandlerTestSuite) TestReviewTimesheet_UnknownStatusRejectedByBinding() {
	adminID := uuid.NewString()
	tsID := uuid.NewString()

	body := map[string]string{"status": "approved"}
	w := suite.doJSON(http.MethodPut, "/admin/timesheets/"+tsID+"/review", suite.generateTestToken(adminID, "admin"), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTimesheetService.AssertNotCalled(suite.T(), "ReviewTimesheet")
}

func (suite *TimesheetHandlerTestSuite) TestAdminRoutes_ForbiddenForEmployees() {
	w := suite.doJSON(http.MethodGet, "/admin/dashboard", suite.generateTestToken(uuid.NewString(), "employee"), nil)
	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockTimesheetService.AssertNotCalled(suite.T(), "GetDashboardSummary")
}

func (suite *TimesheetHandlerTestSuite) TestDashboard_Success() {
	adminID := uuid.NewString()
	summary := &domain.DashboardSummary{TotalTimesheets: 7, PendingTimesheets: 2, AcceptedTimesheets: 4, RejectedTimesheets: 1, TotalEmployees: 3}

	suite.mockTimesheetService.On("GetDashboardSummary", mock.Anything).Return(summary, nil).Once()

	w := suite.doJSON(http.MethodGet, "/admin/dashboard", suite.generateTestToken(adminID, "admin"), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp domain.DashboardSummary
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(int64(7), resp.TotalTimesheets)
	suite.Equal(int64(3), resp.TotalEmployees)
}

func (suite *TimesheetHandlerTestSuite) TestDownload_QueryTokenFallback() {
	adminID := uuid.NewString()
	tsID := uuid.NewString()
	row := &domain.TimesheetExportRow{
		Timesheet: domain.Timesheet{
			TimesheetID:  tsID,
			EmployeeName: "Jane Doe",
			WorkDate:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
			Status:       domain.StatusAccepted,
		},
	}

	suite.mockTimesheetService.On("ExportTimesheet", mock.Anything, tsID).Return(row, nil).Once()

	// No Authorization header; the token rides in the query string.
	token := suite.generateTestToken(adminID, "admin")
	req, _ := http.NewRequest(http.MethodGet, "/admin/timesheets/"+tsID+"/download?token="+token, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.True(bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	suite.mockTimesheetService.AssertExpectations(suite.T())
}

func (suite *TimesheetHandlerTestSuite) TestDownload_QueryTokenRejectedForEmployees() {
	tsID := uuid.NewString()
	token := suite.generateTestToken(uuid.NewString(), "employee")

	req, _ := http.NewRequest(http.MethodGet, "/admin/timesheets/"+tsID+"/download?token="+token, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockTimesheetService.AssertNotCalled(suite.T(), "ExportTimesheet")
}

func (suite *TimesheetHandlerTestSuite) TestAdminExport_FormatSwitch() {
	adminID := uuid.NewString()

	suite.mockTimesheetService.On("ExportTimesheets", mock.Anything, mock.AnythingOfType("domain.TimesheetFilter")).
		Return([]domain.TimesheetExportRow{}, nil).Once()

	w := suite.doJSON(http.MethodGet, "/admin/timesheets/export?format=pdf", suite.generateTestToken(adminID, "admin"), nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
}

func (suite *TimesheetHandlerTestSuite) TestAdminExport_UnknownFormat() {
	adminID := uuid.NewString()

	w := suite.doJSON(http.MethodGet, "/admin/timesheets/export?format=xml", suite.generateTestToken(adminID, "admin"), nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockTimesheetService.AssertNotCalled(suite.T(), "ExportTimesheets")
}

func TestTimesheetHandler(t *testing.T) {
	suite.Run(t, new(TimesheetHandlerTestSuite))
}
