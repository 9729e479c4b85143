package router

import (
	"crewhub/core/middleware"
	"crewhub/modules/finance/controller"

	"github.com/labstack/echo/v4"
)

type FinanceRouter struct {
	FinanceController *controller.FinanceController
}

func NewFinanceRouter(financeController *controller.FinanceController) *FinanceRouter {
	return &FinanceRouter{FinanceController: financeController}
}

func (r *FinanceRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	privateRoutes.POST("/transactions", r.FinanceController.CreateTransaction)
	privateRoutes.DELETE("/transactions/:id", r.FinanceController.DeleteTransaction)
	privateRoutes.GET("/groups/:groupId/transactions", r.FinanceController.GetGroupTransactions)
	privateRoutes.GET("/groups/:groupId/finance/summary", r.FinanceController.GetFinanceSummary)
}
