package router

import (
	"crewhub/core/middleware"
	"crewhub/modules/board/controller"

	"github.com/labstack/echo/v4"
)

type BoardRouter struct {
	BoardController *controller.BoardController
}

func NewBoardRouter(boardController *controller.BoardController) *BoardRouter {
	return &BoardRouter{BoardController: boardController}
}

func (r *BoardRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	postRoutes := privateRoutes.Group("/posts")
	postRoutes.POST("", r.BoardController.CreatePost)
	postRoutes.GET("/:id", r.BoardController.GetPost)
	postRoutes.PUT("/:id", r.BoardController.UpdatePost)
	postRoutes.DELETE("/:id", r.BoardController.DeletePost)
	postRoutes.POST("/attachments", r.BoardController.UploadAttachment)

	postRoutes.POST("/:id/comments", r.BoardController.CreateComment)
	postRoutes.GET("/:id/comments", r.BoardController.GetComments)
	postRoutes.DELETE("/:id/comments/:commentId", r.BoardController.DeleteComment)

	privateRoutes.GET("/groups/:groupId/posts", r.BoardController.GetGroupPosts)
}
