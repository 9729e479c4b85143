package router

import (
	"crewhub/core/middleware"
	"crewhub/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

type NotificationRouter struct {
	NotificationController *controller.NotificationController
}

func NewNotificationRouter(notificationController *controller.NotificationController) *NotificationRouter {
	return &NotificationRouter{NotificationController: notificationController}
}

func (r *NotificationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	notificationRoutes := privateRoutes.Group("/notifications")
	notificationRoutes.GET("", r.NotificationController.GetNotifications)
	notificationRoutes.GET("/unread-count", r.NotificationController.GetUnreadCount)
	notificationRoutes.PATCH("/:id/read", r.NotificationController.MarkRead)
	notificationRoutes.PATCH("/read-all", r.NotificationController.MarkAllRead)
}
