package notification

import (
	"crewhub/core/database"
	"crewhub/core/middleware"
	"crewhub/core/queue"
	"crewhub/modules/notification/controller"
	"crewhub/modules/notification/repository"
	"crewhub/modules/notification/router"
	"crewhub/modules/notification/service"

	attendanceservice "crewhub/modules/attendance/service"
	memberservice "crewhub/modules/member/service"
	scheduleservice "crewhub/modules/schedule/service"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Init wires the notification module and registers its background task
// handlers on the worker mux.
func Init(
	e *echo.Echo,
	db database.Database,
	q queue.ClientInterface,
	mux *asynq.ServeMux,
	scheduleSvc scheduleservice.ScheduleServiceInterface,
	attendanceSvc attendanceservice.AttendanceServiceInterface,
	groupSvc memberservice.GroupServiceInterface,
	mw *middleware.Middleware,
) service.NotificationServiceInterface {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo, q)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Setup(e, mw)

	service.NewWorker(repo, scheduleSvc, attendanceSvc, groupSvc).Register(mux)

	return svc
}
