package controller

import (
	"crewhub/core/controller"
	"crewhub/core/errors"
	"crewhub/core/middleware"
	"crewhub/core/utils"
	"crewhub/modules/attendance/dto"
	"crewhub/modules/attendance/service"

	"github.com/labstack/echo/v4"
)

type AttendanceController struct {
	controller.BaseController
	AttendanceService service.AttendanceServiceInterface
}

func NewAttendanceController(svc service.AttendanceServiceInterface) *AttendanceController {
	return &AttendanceController{
		BaseController:    controller.NewBaseController(),
		AttendanceService: svc,
	}
}

func (ctrl *AttendanceController) MarkAttendance(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	scheduleID := utils.ToUUID(c.Param("id"))

	requestData := new(dto.MarkAttendanceRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	record, errMark := ctrl.AttendanceService.Mark(ctx, actorID, scheduleID, requestData)
	if errMark != nil {
		return ctrl.ErrorResponse(c, errMark)
	}

	return ctrl.SuccessResponse(c, record, "mark attendance success")
}

func (ctrl *AttendanceController) BulkMarkAttendance(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	scheduleID := utils.ToUUID(c.Param("id"))

	requestData := new(dto.BulkMarkRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	if errMark := ctrl.AttendanceService.BulkMark(ctx, actorID, scheduleID, requestData); errMark != nil {
		return ctrl.ErrorResponse(c, errMark)
	}

	return ctrl.SuccessResponse(c, nil, "bulk mark attendance success")
}

func (ctrl *AttendanceController) GetScheduleAttendance(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	scheduleID := utils.ToUUID(c.Param("id"))

	records, errGet := ctrl.AttendanceService.ListBySchedule(ctx, actorID, scheduleID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, records, "get attendance success")
}

func (ctrl *AttendanceController) SubmitRsvp(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	scheduleID := utils.ToUUID(c.Param("id"))

	requestData := new(dto.RsvpRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	rsvp, errSubmit := ctrl.AttendanceService.SubmitRsvp(ctx, userID, scheduleID, requestData)
	if errSubmit != nil {
		return ctrl.ErrorResponse(c, errSubmit)
	}

	return ctrl.SuccessResponse(c, rsvp, "submit rsvp success")
}

func (ctrl *AttendanceController) GetScheduleRsvps(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	scheduleID := utils.ToUUID(c.Param("id"))

	rsvps, errGet := ctrl.AttendanceService.ListRsvps(ctx, actorID, scheduleID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, rsvps, "get rsvps success")
}

func (ctrl *AttendanceController) GetRsvpSummary(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	scheduleID := utils.ToUUID(c.Param("id"))

	summary, errGet := ctrl.AttendanceService.GetRsvpSummary(ctx, actorID, scheduleID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, summary, "get rsvp summary success")
}
