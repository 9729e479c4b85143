package member

import (
	"crewhub/core/database"
	"crewhub/core/middleware"
	"crewhub/modules/member/controller"
	"crewhub/modules/member/repository"
	"crewhub/modules/member/router"
	"crewhub/modules/member/service"

	"github.com/labstack/echo/v4"
)

// Init wires the member module and registers its routes. The returned
// service is shared with modules that need membership checks.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) service.GroupServiceInterface {
	repo := repository.NewGroupRepository(db)
	svc := service.NewGroupService(repo)
	ctrl := controller.NewGroupController(svc)

	router.NewMemberRouter(ctrl).Setup(e, mw)

	return svc
}
