package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"deskflow/internal/application/notification/usecases"
	"deskflow/internal/shared/logger"
	"deskflow/internal/shared/utils"
)

// NotificationHandler handles the per-user notification inbox.
type NotificationHandler struct {
	listUC        *usecases.ListNotificationsUseCase
	markReadUC    *usecases.MarkReadUseCase
	markAllReadUC *usecases.MarkAllReadUseCase
	unreadCountUC *usecases.UnreadCountUseCase
	logger        logger.Interface
}

func NewNotificationHandler(
	listUC *usecases.ListNotificationsUseCase,
	markReadUC *usecases.MarkReadUseCase,
	markAllReadUC *usecases.MarkAllReadUseCase,
	unreadCountUC *usecases.UnreadCountUseCase,
	logger logger.Interface,
) *NotificationHandler {
	return &NotificationHandler{
		listUC:        listUC,
		markReadUC:    markReadUC,
		markAllReadUC: markAllReadUC,
		unreadCountUC: unreadCountUC,
		logger:        logger,
	}
}

// ListNotifications handles GET /notifications
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	page, pageSize := utils.ParsePagination(c)

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID:   who.ID,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Notifications, result.Total, page, pageSize)
}

// UnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	count, err := h.unreadCountUC.Execute(c.Request.Context(), usecases.UnreadCountQuery{UserID: who.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"unread": count})
}

// MarkRead handles PATCH /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	notificationID, err := utils.ParseUintParam(c, "id", "notification")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.markReadUC.Execute(c.Request.Context(), usecases.MarkReadCommand{
		UserID:         who.ID,
		NotificationID: notificationID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead handles PATCH /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	who, ok := currentCaller(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "user not authenticated")
		return
	}

	err := h.markAllReadUC.Execute(c.Request.Context(), usecases.MarkAllReadCommand{UserID: who.ID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "All notifications marked as read", nil)
}
