package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/naveenakasaragadda1/Timesheet-Server/internal/core/ports/services"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/dto"
	"github.com/naveenakasaragadda1/Timesheet-Server/internal/middleware"
)

// employeeAdminHandler handles the admin-facing account management endpoints.
type employeeAdminHandler struct {
	userService portssvc.UserSvcFacade
}

func newEmployeeAdminHandler(us portssvc.UserSvcFacade) *employeeAdminHandler {
	return &employeeAdminHandler{userService: us}
}

// registerEmployeeAdminRoutes registers account management under the admin group.
func registerEmployeeAdminRoutes(rg *gin.RouterGroup, userService portssvc.UserSvcFacade) {
	h := newEmployeeAdminHandler(userService)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.GET("/:id", h.getEmployee)
		employees.PUT("/:id", h.updateEmployee)
		employees.DELETE("/:id", h.deleteEmployee)
	}
}

// createEmployee godoc
// @Summary Create an employee account
// @Description Creates a new account. Defaults to the employee role when none is given.
// @Tags admin
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Account details"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Username already taken"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/employees [post]
func (h *employeeAdminHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for create employee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	createdUser, err := h.userService.CreateEmployee(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondWithError(c, err, "Failed to create employee")
		return
	}

	logger.Info("Employee created", slog.String("new_user_id", createdUser.UserID))
	c.JSON(http.StatusCreated, dto.ToUserResponse(createdUser))
}

// listEmployees godoc
// @Summary List employee accounts
// @Description Retrieves a paginated list of accounts.
// @Tags admin
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/employees [get]
func (h *employeeAdminHandler) listEmployees(c *gin.Context) {
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.userService.ListEmployees(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		respondWithError(c, err, "Failed to list employees")
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(users))
}

// getEmployee godoc
// @Summary Get an employee account
// @Description Retrieves a single account by ID.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/employees/{id} [get]
func (h *employeeAdminHandler) getEmployee(c *gin.Context) {
	userID := c.Param("id")

	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to retrieve employee")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// updateEmployee godoc
// @Summary Update an employee account
// @Description Updates profile fields of an account. Omitted fields are untouched.
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/employees/{id} [put]
func (h *employeeAdminHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	updatedUser, err := h.userService.UpdateEmployee(c.Request.Context(), userID, req, requestingUserID)
	if err != nil {
		respondWithError(c, err, "Failed to update employee")
		return
	}

	logger.Info("Employee updated", slog.String("target_user_id", userID))
	c.JSON(http.StatusOK, dto.ToUserResponse(updatedUser))
}

// deleteEmployee godoc
// @Summary Delete an employee account
// @Description Soft-deletes the account and removes its timesheets in one unit of work.
// @Tags admin
// @Produce json
// @Param id path string true "User ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/employees/{id} [delete]
func (h *employeeAdminHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID := c.Param("id")

	requestingUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	if err := h.userService.DeleteEmployee(c.Request.Context(), userID, requestingUserID); err != nil {
		respondWithError(c, err, "Failed to delete employee")
		return
	}

	logger.Info("Employee deleted", slog.String("target_user_id", userID), slog.String("deleter_user_id", requestingUserID))
	c.Status(http.StatusNoContent)
}
