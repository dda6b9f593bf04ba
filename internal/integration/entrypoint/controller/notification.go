// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lifequest/backend/internal/application/adapter"
	"github.com/lifequest/backend/internal/integration/entrypoint/dto"
)

const defaultNotificationLimit = 20

// NotificationController handles notification feed endpoints.
type NotificationController struct {
	feed adapter.NotificationFeed
}

// NewNotificationController creates a new notification controller instance.
func NewNotificationController(feed adapter.NotificationFeed) *NotificationController {
	return &NotificationController{
		feed: feed,
	}
}

// List handles GET /notifications requests.
// Notifications are returned newest first.
func (c *NotificationController) List(ctx *gin.Context) {
	limit := defaultNotificationLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err == nil && parsed > 0 {
			limit = parsed
		}
	}

	notifications, err := c.feed.Recent(ctx.Request.Context(), limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve notifications",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNotificationListResponse(notifications))
}
