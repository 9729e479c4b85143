package widget

import (
	"crewhub/core/cache"
	"crewhub/core/middleware"
	"crewhub/modules/widget/controller"
	"crewhub/modules/widget/router"
	"crewhub/modules/widget/service"

	memberservice "crewhub/modules/member/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, c cache.CacheInterface, groupSvc memberservice.GroupServiceInterface, mw *middleware.Middleware) service.WidgetServiceInterface {
	svc := service.NewWidgetService(c, groupSvc)
	ctrl := controller.NewWidgetController(svc)

	router.NewWidgetRouter(ctrl).Setup(e, mw)

	return svc
}
