package router

import (
	"crewhub/core/middleware"
	"crewhub/modules/widget/controller"

	"github.com/labstack/echo/v4"
)

type WidgetRouter struct {
	WidgetController *controller.WidgetController
}

func NewWidgetRouter(widgetController *controller.WidgetController) *WidgetRouter {
	return &WidgetRouter{WidgetController: widgetController}
}

func (r *WidgetRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	widgetRoutes := privateRoutes.Group("/groups/:groupId/widgets")
	widgetRoutes.GET("/:key", r.WidgetController.GetWidget)
	widgetRoutes.PUT("/:key", r.WidgetController.SetWidget)
	widgetRoutes.DELETE("/:key", r.WidgetController.DeleteWidget)
}
