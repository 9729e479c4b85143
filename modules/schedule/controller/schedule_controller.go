package controller

import (
	"crewhub/core/controller"
	"crewhub/core/errors"
	"crewhub/core/middleware"
	"crewhub/core/params"
	"crewhub/core/utils"
	"crewhub/modules/schedule/dto"
	"crewhub/modules/schedule/entity"
	"crewhub/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

type ScheduleController struct {
	controller.BaseController
	ScheduleService service.ScheduleServiceInterface
}

func NewScheduleController(svc service.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		BaseController:  controller.NewBaseController(),
		ScheduleService: svc,
	}
}

func (ctrl *ScheduleController) CreateSchedule(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	requestData := new(dto.CreateScheduleRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.Title == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "title is required", nil)
	}

	schedules, errCreate := ctrl.ScheduleService.Create(ctx, userID, requestData)
	if errCreate != nil {
		return ctrl.ErrorResponse(c, errCreate)
	}

	return ctrl.SuccessResponse(c, schedules, "create schedule success")
}

func (ctrl *ScheduleController) GetScheduleByID(c echo.Context) error {
	ctx := c.Request().Context()

	scheduleID := utils.ToUUID(c.Param("id"))

	schedule, errGet := ctrl.ScheduleService.GetByID(ctx, scheduleID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, schedule, "get schedule success")
}

func (ctrl *ScheduleController) GetGroupSchedules(c echo.Context) error {
	ctx := c.Request().Context()

	groupID := utils.ToUUID(c.Param("groupId"))
	dateRange := params.NewDateRange(c)

	schedules, errGet := ctrl.ScheduleService.ListByGroup(ctx, groupID, dateRange.From, dateRange.To)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, schedules, "get schedules success")
}

func (ctrl *ScheduleController) UpdateSchedule(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	scheduleID := utils.ToUUID(c.Param("id"))

	requestData := new(dto.UpdateScheduleRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.Title == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "title is required", nil)
	}

	if errUpdate := ctrl.ScheduleService.Update(ctx, userID, scheduleID, requestData); errUpdate != nil {
		return ctrl.ErrorResponse(c, errUpdate)
	}

	return ctrl.SuccessResponse(c, nil, "update schedule success")
}

func (ctrl *ScheduleController) DeleteSchedule(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	scheduleID := utils.ToUUID(c.Param("id"))
	scope := entity.ParseScope(c.QueryParam("scope"))

	if errDelete := ctrl.ScheduleService.Delete(ctx, userID, scheduleID, scope); errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete schedule success")
}
