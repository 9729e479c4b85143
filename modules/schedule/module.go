package schedule

import (
	"crewhub/core/database"
	"crewhub/core/middleware"
	"crewhub/core/queue"
	"crewhub/modules/schedule/controller"
	"crewhub/modules/schedule/repository"
	"crewhub/modules/schedule/router"
	"crewhub/modules/schedule/service"

	memberservice "crewhub/modules/member/service"

	"github.com/labstack/echo/v4"
)

// Init wires the schedule module. The group service handles leader checks
// for create, update and delete.
func Init(e *echo.Echo, db database.Database, groupSvc memberservice.GroupServiceInterface, q queue.ClientInterface, mw *middleware.Middleware) service.ScheduleServiceInterface {
	repo := repository.NewScheduleRepository(db)
	svc := service.NewScheduleService(repo, groupSvc, q)
	ctrl := controller.NewScheduleController(svc)

	router.NewScheduleRouter(ctrl).Setup(e, mw)

	return svc
}
