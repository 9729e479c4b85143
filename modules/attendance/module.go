package attendance

import (
	"crewhub/core/database"
	"crewhub/core/middleware"
	"crewhub/modules/attendance/controller"
	"crewhub/modules/attendance/repository"
	"crewhub/modules/attendance/router"
	"crewhub/modules/attendance/service"

	memberservice "crewhub/modules/member/service"
	scheduleservice "crewhub/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

func Init(
	e *echo.Echo,
	db database.Database,
	scheduleSvc scheduleservice.ScheduleServiceInterface,
	groupSvc memberservice.GroupServiceInterface,
	mw *middleware.Middleware,
) service.AttendanceServiceInterface {
	repo := repository.NewAttendanceRepository(db)
	svc := service.NewAttendanceService(repo, scheduleSvc, groupSvc)
	ctrl := controller.NewAttendanceController(svc)

	router.NewAttendanceRouter(ctrl).Setup(e, mw)

	return svc
}
