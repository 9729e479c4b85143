package controller

import (
	"crewhub/core/controller"
	"crewhub/core/errors"
	"crewhub/core/middleware"
	"crewhub/core/utils"
	"crewhub/modules/notification/service"

	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	controller.BaseController
	NotificationService service.NotificationServiceInterface
}

func NewNotificationController(svc service.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		BaseController:      controller.NewBaseController(),
		NotificationService: svc,
	}
}

func (ctrl *NotificationController) GetNotifications(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	notifications, errGet := ctrl.NotificationService.List(ctx, userID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, notifications, "get notifications success")
}

func (ctrl *NotificationController) GetUnreadCount(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	count, errGet := ctrl.NotificationService.UnreadCount(ctx, userID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, count, "get unread count success")
}

func (ctrl *NotificationController) MarkRead(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	notificationID := utils.ToUUID(c.Param("id"))

	if errMark := ctrl.NotificationService.MarkRead(ctx, userID, notificationID); errMark != nil {
		return ctrl.ErrorResponse(c, errMark)
	}

	return ctrl.SuccessResponse(c, nil, "mark read success")
}

func (ctrl *NotificationController) MarkAllRead(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	if errMark := ctrl.NotificationService.MarkAllRead(ctx, userID); errMark != nil {
		return ctrl.ErrorResponse(c, errMark)
	}

	return ctrl.SuccessResponse(c, nil, "mark all read success")
}
