package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskflow/internal/application/user/usecases"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/utils"
)

// UserHandler handles profile operations and admin user management.
type UserHandler struct {
	getProfileUC     *usecases.GetProfileUseCase
	updateProfileUC  *usecases.UpdateProfileUseCase
	changePasswordUC *usecases.ChangePasswordUseCase
	listUsersUC      *usecases.ListUsersUseCase
	suspendUserUC    *usecases.SuspendUserUseCase
	deleteUserUC     *usecases.DeleteUserUseCase
	logger           logger.Interface
}

func NewUserHandler(
	getProfileUC *usecases.GetProfileUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	changePasswordUC *usecases.ChangePasswordUseCase,
	listUsersUC *usecases.ListUsersUseCase,
	suspendUserUC *usecases.SuspendUserUseCase,
	deleteUserUC *usecases.DeleteUserUseCase,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		getProfileUC:     getProfileUC,
		updateProfileUC:  updateProfileUC,
		changePasswordUC: changePasswordUC,
		listUsersUC:      listUsersUC,
		suspendUserUC:    suspendUserUC,
		deleteUserUC:     deleteUserUC,
		logger:           logger,
	}
}

// GetProfile handles GET /users/me
func (h *UserHandler) GetProfile(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	profile, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{UserID: who.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", profile)
}

type updateProfileRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Language  string `json:"language"`
}

// UpdateProfile handles PUT /users/me
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	profile, err := h.updateProfileUC.Execute(c.Request.Context(), usecases.UpdateProfileCommand{
		UserID:    who.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Language:  req.Language,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", profile)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}

// ChangePassword handles PUT /users/me/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err := h.changePasswordUC.Execute(c.Request.Context(), usecases.ChangePasswordCommand{
		UserID:          who.ID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, pageSize := utils.ParsePagination(c)

	result, err := h.listUsersUC.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Role:     c.Query("role"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total, page, pageSize)
}

type suspendRequest struct {
	Suspended *bool `json:"suspended" binding:"required"`
}

// SuspendUser handles PATCH /users/:id/suspend
func (h *UserHandler) SuspendUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req suspendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	err = h.suspendUserUC.Execute(c.Request.Context(), usecases.SuspendUserCommand{
		UserID:    userID,
		Suspended: *req.Suspended,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "User suspension updated", nil)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{UserID: userID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
