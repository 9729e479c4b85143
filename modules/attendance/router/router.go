package router

import (
	"crewhub/core/middleware"
	"crewhub/modules/attendance/controller"

	"github.com/labstack/echo/v4"
)

type AttendanceRouter struct {
	AttendanceController *controller.AttendanceController
}

func NewAttendanceRouter(attendanceController *controller.AttendanceController) *AttendanceRouter {
	return &AttendanceRouter{AttendanceController: attendanceController}
}

func (r *AttendanceRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	scheduleRoutes := privateRoutes.Group("/schedules/:id")
	scheduleRoutes.POST("/attendance", r.AttendanceController.MarkAttendance)
	scheduleRoutes.POST("/attendance/bulk", r.AttendanceController.BulkMarkAttendance)
	scheduleRoutes.GET("/attendance", r.AttendanceController.GetScheduleAttendance)
	scheduleRoutes.POST("/rsvp", r.AttendanceController.SubmitRsvp)
	scheduleRoutes.GET("/rsvp", r.AttendanceController.GetScheduleRsvps)
	scheduleRoutes.GET("/rsvp/summary", r.AttendanceController.GetRsvpSummary)
}
