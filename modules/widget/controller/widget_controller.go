package controller

import (
	"crewhub/core/controller"
	"crewhub/core/errors"
	"crewhub/core/middleware"
	"crewhub/core/utils"
	"crewhub/modules/widget/dto"
	"crewhub/modules/widget/service"

	"github.com/labstack/echo/v4"
)

type WidgetController struct {
	controller.BaseController
	WidgetService service.WidgetServiceInterface
}

func NewWidgetController(svc service.WidgetServiceInterface) *WidgetController {
	return &WidgetController{
		BaseController: controller.NewBaseController(),
		WidgetService:  svc,
	}
}

func (ctrl *WidgetController) GetWidget(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("groupId"))
	key := c.Param("key")

	widget, errGet := ctrl.WidgetService.Get(ctx, userID, groupID, key)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, widget, "get widget success")
}

func (ctrl *WidgetController) SetWidget(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("groupId"))
	key := c.Param("key")

	requestData := new(dto.SetWidgetRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	if errSet := ctrl.WidgetService.Set(ctx, userID, groupID, key, requestData.Value); errSet != nil {
		return ctrl.ErrorResponse(c, errSet)
	}

	return ctrl.SuccessResponse(c, nil, "set widget success")
}

func (ctrl *WidgetController) DeleteWidget(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("groupId"))
	key := c.Param("key")

	if errDelete := ctrl.WidgetService.Delete(ctx, userID, groupID, key); errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete widget success")
}
