package controller

import (
	"crewhub/core/controller"
	"crewhub/core/errors"
	"crewhub/core/middleware"
	"crewhub/core/params"
	"crewhub/core/utils"
	"crewhub/modules/board/dto"
	"crewhub/modules/board/service"

	"github.com/labstack/echo/v4"
)

type BoardController struct {
	controller.BaseController
	BoardService service.BoardServiceInterface
}

func NewBoardController(svc service.BoardServiceInterface) *BoardController {
	return &BoardController{
		BaseController: controller.NewBaseController(),
		BoardService:   svc,
	}
}

func (ctrl *BoardController) CreatePost(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	requestData := new(dto.CreatePostRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.Title == "" || requestData.Content == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "title and content are required", nil)
	}

	post, errCreate := ctrl.BoardService.CreatePost(ctx, userID, requestData)
	if errCreate != nil {
		return ctrl.ErrorResponse(c, errCreate)
	}

	return ctrl.SuccessResponse(c, post, "create post success")
}

func (ctrl *BoardController) GetPost(c echo.Context) error {
	ctx := c.Request().Context()

	postID := utils.ToUUID(c.Param("id"))

	post, errGet := ctrl.BoardService.GetPost(ctx, postID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, post, "get post success")
}

func (ctrl *BoardController) GetGroupPosts(c echo.Context) error {
	ctx := c.Request().Context()

	groupID := utils.ToUUID(c.Param("groupId"))
	queryParams := params.NewQueryParams(c)

	posts, errGet := ctrl.BoardService.GetPosts(ctx, groupID, *queryParams)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, posts, "get posts success")
}

func (ctrl *BoardController) UpdatePost(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	postID := utils.ToUUID(c.Param("id"))

	requestData := new(dto.UpdatePostRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.Title == "" || requestData.Content == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "title and content are required", nil)
	}

	if errUpdate := ctrl.BoardService.UpdatePost(ctx, userID, postID, requestData); errUpdate != nil {
		return ctrl.ErrorResponse(c, errUpdate)
	}

	return ctrl.SuccessResponse(c, nil, "update post success")
}

func (ctrl *BoardController) DeletePost(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	postID := utils.ToUUID(c.Param("id"))

	if errDelete := ctrl.BoardService.DeletePost(ctx, userID, postID); errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete post success")
}

func (ctrl *BoardController) UploadAttachment(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	header, err := c.FormFile("file")
	if err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "file is required", nil)
	}

	result, errUpload := ctrl.BoardService.UploadAttachment(ctx, userID, header)
	if errUpload != nil {
		return ctrl.ErrorResponse(c, errUpload)
	}

	return ctrl.SuccessResponse(c, result, "upload attachment success")
}

func (ctrl *BoardController) CreateComment(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	postID := utils.ToUUID(c.Param("id"))

	requestData := new(dto.CreateCommentRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.Content == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "content is required", nil)
	}

	comment, errCreate := ctrl.BoardService.CreateComment(ctx, userID, postID, requestData)
	if errCreate != nil {
		return ctrl.ErrorResponse(c, errCreate)
	}

	return ctrl.SuccessResponse(c, comment, "create comment success")
}

func (ctrl *BoardController) GetComments(c echo.Context) error {
	ctx := c.Request().Context()

	postID := utils.ToUUID(c.Param("id"))

	comments, errGet := ctrl.BoardService.GetComments(ctx, postID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, comments, "get comments success")
}

func (ctrl *BoardController) DeleteComment(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	commentID := utils.ToUUID(c.Param("commentId"))

	if errDelete := ctrl.BoardService.DeleteComment(ctx, userID, commentID); errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete comment success")
}
