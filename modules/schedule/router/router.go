package router

import (
	"crewhub/core/middleware"
	"crewhub/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

type ScheduleRouter struct {
	ScheduleController *controller.ScheduleController
}

func NewScheduleRouter(scheduleController *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{ScheduleController: scheduleController}
}

func (r *ScheduleRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	scheduleRoutes := privateRoutes.Group("/schedules")
	scheduleRoutes.POST("", r.ScheduleController.CreateSchedule)
	scheduleRoutes.GET("/:id", r.ScheduleController.GetScheduleByID)
	scheduleRoutes.PUT("/:id", r.ScheduleController.UpdateSchedule)
	scheduleRoutes.DELETE("/:id", r.ScheduleController.DeleteSchedule)

	privateRoutes.GET("/groups/:groupId/schedules", r.ScheduleController.GetGroupSchedules)
}
