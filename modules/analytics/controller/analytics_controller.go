package controller

import (
	"crewhub/core/controller"
	"crewhub/core/errors"
	"crewhub/core/middleware"
	"crewhub/core/params"
	"crewhub/core/utils"
	"crewhub/modules/analytics/service"

	"github.com/labstack/echo/v4"
)

type AnalyticsController struct {
	controller.BaseController
	AnalyticsService service.AnalyticsServiceInterface
}

func NewAnalyticsController(svc service.AnalyticsServiceInterface) *AnalyticsController {
	return &AnalyticsController{
		BaseController:   controller.NewBaseController(),
		AnalyticsService: svc,
	}
}

func (ctrl *AnalyticsController) GetReminders(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("groupId"))
	window := params.WindowDays(c)

	targets, errGet := ctrl.AnalyticsService.Reminders(ctx, userID, groupID, window)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, targets, "get reminder targets success")
}

func (ctrl *AnalyticsController) GetChurn(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("groupId"))
	window := params.WindowDays(c)

	summary, errGet := ctrl.AnalyticsService.Churn(ctx, userID, groupID, window)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, summary, "get churn summary success")
}

func (ctrl *AnalyticsController) GetPrediction(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	scheduleID := utils.ToUUID(c.Param("id"))

	report, errGet := ctrl.AnalyticsService.Predict(ctx, userID, scheduleID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, report, "get prediction success")
}

func (ctrl *AnalyticsController) GetStreaks(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("groupId"))

	// Default to the caller's own streaks.
	userID := actorID
	if v := c.QueryParam("user_id"); v != "" {
		userID = utils.ToUUID(v)
	}

	streaks, errGet := ctrl.AnalyticsService.Streaks(ctx, actorID, groupID, userID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, streaks, "get streaks success")
}

func (ctrl *AnalyticsController) GetAnomalies(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("groupId"))
	window := params.WindowDays(c)

	report, errGet := ctrl.AnalyticsService.Anomalies(ctx, userID, groupID, window)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, report, "get anomalies success")
}

func (ctrl *AnalyticsController) GetReport(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("groupId"))
	window := params.WindowDays(c)

	report, errGet := ctrl.AnalyticsService.Report(ctx, userID, groupID, window)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, report, "get activity report success")
}
