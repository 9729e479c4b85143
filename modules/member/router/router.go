package router

import (
	"crewhub/core/middleware"
	"crewhub/modules/member/controller"

	"github.com/labstack/echo/v4"
)

type MemberRouter struct {
	GroupController *controller.GroupController
}

func NewMemberRouter(groupController *controller.GroupController) *MemberRouter {
	return &MemberRouter{GroupController: groupController}
}

func (r *MemberRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	publicRoutes := v1.Group("/public")
	publicRoutes.GET("/groups", r.GroupController.GetGroups)
	publicRoutes.GET("/groups/:id", r.GroupController.GetGroupByID)

	privateRoutes := v1.Group("/private")
	groupRoutes := privateRoutes.Group("/groups", mw.AuthMiddleware())

	groupRoutes.POST("", r.GroupController.CreateGroup)
	groupRoutes.GET("/mine", r.GroupController.GetMyGroups)
	groupRoutes.GET("/:id", r.GroupController.GetGroupByID)
	groupRoutes.PUT("/:id", r.GroupController.UpdateGroup)
	groupRoutes.DELETE("/:id", r.GroupController.DeleteGroup)

	groupRoutes.POST("/join", r.GroupController.JoinGroup)
	groupRoutes.POST("/:id/leave", r.GroupController.LeaveGroup)
	groupRoutes.GET("/:id/members", r.GroupController.GetMembers)
	groupRoutes.DELETE("/:id/members/:userId", r.GroupController.RemoveMember)
}
