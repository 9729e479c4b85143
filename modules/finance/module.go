package finance

import (
	"crewhub/core/database"
	"crewhub/core/middleware"
	"crewhub/modules/finance/controller"
	"crewhub/modules/finance/repository"
	"crewhub/modules/finance/router"
	"crewhub/modules/finance/service"

	memberservice "crewhub/modules/member/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, db database.Database, groupSvc memberservice.GroupServiceInterface, mw *middleware.Middleware) service.FinanceServiceInterface {
	repo := repository.NewTransactionRepository(db)
	svc := service.NewFinanceService(repo, groupSvc)
	ctrl := controller.NewFinanceController(svc)

	router.NewFinanceRouter(ctrl).Setup(e, mw)

	return svc
}
