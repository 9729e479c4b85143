package router

import (
	"crewhub/core/middleware"
	"crewhub/modules/analytics/controller"

	"github.com/labstack/echo/v4"
)

type AnalyticsRouter struct {
	AnalyticsController *controller.AnalyticsController
}

func NewAnalyticsRouter(analyticsController *controller.AnalyticsController) *AnalyticsRouter {
	return &AnalyticsRouter{AnalyticsController: analyticsController}
}

func (r *AnalyticsRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	analyticsRoutes := privateRoutes.Group("/groups/:groupId/analytics")
	analyticsRoutes.GET("/reminders", r.AnalyticsController.GetReminders)
	analyticsRoutes.GET("/churn", r.AnalyticsController.GetChurn)
	analyticsRoutes.GET("/streaks", r.AnalyticsController.GetStreaks)
	analyticsRoutes.GET("/anomalies", r.AnalyticsController.GetAnomalies)
	analyticsRoutes.GET("/report", r.AnalyticsController.GetReport)

	privateRoutes.GET("/schedules/:id/prediction", r.AnalyticsController.GetPrediction)
}
