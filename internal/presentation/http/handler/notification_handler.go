package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/partsledger/partsledger-api/internal/application/service"
	"github.com/partsledger/partsledger-api/internal/presentation/http/dto/response"
)

// NotificationHandler handles notification HTTP requests
type NotificationHandler struct {
	notificationService *service.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles listing notifications, newest first
func (h *NotificationHandler) List(c *gin.Context) {
	notes := h.notificationService.ListNotifications(c.Request.Context())
	response.OK(c, "Notifications retrieved successfully", notes)
}

// Clear handles emptying the notification log
func (h *NotificationHandler) Clear(c *gin.Context) {
	if err := h.notificationService.Clear(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Notifications cleared successfully", nil)
}

// MarkRead handles marking one notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Notification marked as read", nil)
}
