package v1

import (
	"net/http"

	"github.com/PHedro/recipes/internal/domain/social"
	"github.com/gin-gonic/gin"
)

// NotificationHandler defines the methods for handling notification endpoints
// in the API. Notifications are written by the worker, so the API only reads
// them and marks them as read.
type NotificationHandler interface {
	List(ctx *gin.Context)
	MarkReadById(ctx *gin.Context)
}

// notificationHandler struct holds the service for reading notifications
type notificationHandler struct {
	notificationService social.NotificationService
}

// NewNotificationHandler creates a new instance of notificationHandler
func NewNotificationHandler(notificationService social.NotificationService) NotificationHandler {
	return &notificationHandler{
		notificationService: notificationService,
	}
}

// List godoc
// @Summary List the authenticated user's notifications
// @Description Lists the authenticated user's notifications, newest first, optionally restricted to unread ones
// @Tags Notification
// @Produce json
// @Param unread query bool false "Only unread notifications"
// @Param page query int false "Page number"
// @Param page_size query int false "Rows per page"
// @Success 200 {object} PageResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /notifications [get]
func (handler *notificationHandler) List(ctx *gin.Context) {
	user := CurrentUser(ctx)
	if user == nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "authentication credentials were not provided"
		ctx.JSON(http.StatusUnauthorized, errorResponse)
		return
	}

	page, pageSize, ok := pageParams(ctx)
	if !ok {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid page"
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	query := social.NewNotificationQuery(user.ID)
	query.Page = page
	query.PageSize = pageSize
	query.Unread = ctx.Query("unread") == "true"

	notifications, total, err := handler.notificationService.List(ctx.Request.Context(), query)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	if invalidPage(page, pageSize, total) {
		var errorResponse ErrorResponse
		errorResponse.Message = "invalid page"
		ctx.JSON(http.StatusNotFound, errorResponse)
		return
	}

	results := make([]NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		results = append(results, newNotificationResponse(notification))
	}

	ctx.JSON(http.StatusOK, newPageResponse(ctx, page, pageSize, total, results))
}

// MarkReadById godoc
// @Summary Mark a notification as read
// @Description Marks one of the authenticated user's notifications as read; marking an already read notification changes nothing
// @Tags Notification
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} NotificationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /notifications/{id}/read [post]
func (handler *notificationHandler) MarkReadById(ctx *gin.Context) {
	user := CurrentUser(ctx)
	if user == nil {
		var errorResponse ErrorResponse
		errorResponse.Message = "authentication credentials were not provided"
		ctx.JSON(http.StatusUnauthorized, errorResponse)
		return
	}

	notificationID := ctx.Param("id")

	notification, err := handler.notificationService.MarkReadByID(ctx.Request.Context(), notificationID, user.ID)
	if err != nil {
		var errorResponse ErrorResponse
		errorResponse.Message = err.Error()
		ctx.JSON(statusFromError(err), errorResponse)
		return
	}

	ctx.JSON(http.StatusOK, newNotificationResponse(notification))
}
