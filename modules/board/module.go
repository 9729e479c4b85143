package board

import (
	"crewhub/core/database"
	"crewhub/core/middleware"
	"crewhub/core/storage"
	"crewhub/modules/board/controller"
	"crewhub/modules/board/repository"
	"crewhub/modules/board/router"
	"crewhub/modules/board/service"

	memberservice "crewhub/modules/member/service"
	notificationservice "crewhub/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(
	e *echo.Echo,
	db database.Database,
	groupSvc memberservice.GroupServiceInterface,
	store storage.ObjectStorageInterface,
	notifSvc notificationservice.NotificationServiceInterface,
	mw *middleware.Middleware,
) service.BoardServiceInterface {
	repo := repository.NewBoardRepository(db)
	svc := service.NewBoardService(repo, groupSvc, store, notifSvc)
	ctrl := controller.NewBoardController(svc)

	router.NewBoardRouter(ctrl).Setup(e, mw)

	return svc
}
