package router

import (
	"crewhub/core/middleware"
	"crewhub/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	controller *controller.AuthController
}

func NewAuthRouter(controller *controller.AuthController) *AuthRouter {
	return &AuthRouter{controller: controller}
}

func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/register", r.controller.Register)
	auth.POST("/login", r.controller.Login)
	auth.POST("/refresh", r.controller.Refresh)
	auth.GET("/google/login", r.controller.GoogleLogin)
	auth.GET("/google/callback", r.controller.GoogleCallback)

	protected := auth.Group("", mw.AuthMiddleware())
	protected.POST("/logout", r.controller.Logout)
	protected.GET("/me", r.controller.Me)
}
