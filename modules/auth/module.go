package auth

import (
	"crewhub/core/cache"
	"crewhub/core/database"
	"crewhub/core/middleware"
	"crewhub/modules/auth/controller"
	"crewhub/modules/auth/repository"
	"crewhub/modules/auth/router"
	"crewhub/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init wires the auth module and registers its routes.
func Init(e *echo.Echo, db database.Database, c cache.CacheInterface, mw *middleware.Middleware) service.AuthServiceInterface {
	repo := repository.NewUserRepository(db)
	svc := service.NewAuthService(repo, c)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Setup(e, mw)

	return svc
}
