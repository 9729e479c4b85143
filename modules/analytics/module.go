package analytics

import (
	"crewhub/core/cache"
	"crewhub/core/database"
	"crewhub/core/middleware"
	"crewhub/modules/analytics/controller"
	"crewhub/modules/analytics/repository"
	"crewhub/modules/analytics/router"
	"crewhub/modules/analytics/service"

	memberservice "crewhub/modules/member/service"
	scheduleservice "crewhub/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

func Init(
	e *echo.Echo,
	db database.Database,
	groupSvc memberservice.GroupServiceInterface,
	scheduleSvc scheduleservice.ScheduleServiceInterface,
	c cache.CacheInterface,
	mw *middleware.Middleware,
) service.AnalyticsServiceInterface {
	repo := repository.NewAnalyticsRepository(db)
	svc := service.NewAnalyticsService(repo, groupSvc, scheduleSvc, c)
	ctrl := controller.NewAnalyticsController(svc)

	router.NewAnalyticsRouter(ctrl).Setup(e, mw)

	return svc
}
