package controller

import (
	"crewhub/core/controller"
	"crewhub/core/errors"
	"crewhub/core/middleware"
	"crewhub/core/params"
	"crewhub/core/utils"
	"crewhub/modules/member/dto"
	"crewhub/modules/member/service"
	"crewhub/modules/member/validator"

	"github.com/labstack/echo/v4"
)

type GroupController struct {
	controller.BaseController
	GroupService service.GroupServiceInterface
}

func NewGroupController(svc service.GroupServiceInterface) *GroupController {
	return &GroupController{
		BaseController: controller.NewBaseController(),
		GroupService:   svc,
	}
}

func (ctrl *GroupController) CreateGroup(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	requestData := new(dto.GroupRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateGroupRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	group, errCreate := ctrl.GroupService.CreateGroup(ctx, userID, requestData)
	if errCreate != nil {
		return ctrl.ErrorResponse(c, errCreate)
	}

	return ctrl.SuccessResponse(c, group, "create group success")
}

func (ctrl *GroupController) GetGroupByID(c echo.Context) error {
	ctx := c.Request().Context()

	groupID := utils.ToUUID(c.Param("id"))

	group, errGet := ctrl.GroupService.GetGroupByID(ctx, groupID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, group, "get group success")
}

func (ctrl *GroupController) GetGroups(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c)

	groups, errGet := ctrl.GroupService.GetGroups(ctx, *queryParams)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, groups, "get groups success")
}

func (ctrl *GroupController) GetMyGroups(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groups, errGet := ctrl.GroupService.GetMyGroups(ctx, userID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, groups, "get my groups success")
}

func (ctrl *GroupController) UpdateGroup(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("id"))

	requestData := new(dto.GroupRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateGroupRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	if errUpdate := ctrl.GroupService.UpdateGroup(ctx, userID, requestData, groupID); errUpdate != nil {
		return ctrl.ErrorResponse(c, errUpdate)
	}

	return ctrl.SuccessResponse(c, nil, "update group success")
}

func (ctrl *GroupController) DeleteGroup(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("id"))

	if errDelete := ctrl.GroupService.DeleteGroup(ctx, userID, groupID); errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete group success")
}

func (ctrl *GroupController) JoinGroup(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	requestData := new(dto.JoinGroupRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	validationResult := validator.ValidateJoinRequest(requestData)
	if validationResult.HasError() {
		return ctrl.BadRequest(errors.ErrInvalidInput, "Invalid request data", validationResult)
	}

	group, errJoin := ctrl.GroupService.JoinGroup(ctx, userID, requestData)
	if errJoin != nil {
		return ctrl.ErrorResponse(c, errJoin)
	}

	return ctrl.SuccessResponse(c, group, "join group success")
}

func (ctrl *GroupController) LeaveGroup(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("id"))

	if errLeave := ctrl.GroupService.LeaveGroup(ctx, userID, groupID); errLeave != nil {
		return ctrl.ErrorResponse(c, errLeave)
	}

	return ctrl.SuccessResponse(c, nil, "leave group success")
}

func (ctrl *GroupController) RemoveMember(c echo.Context) error {
	ctx := c.Request().Context()

	actorID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("id"))
	userID := utils.ToUUID(c.Param("userId"))

	if errRemove := ctrl.GroupService.RemoveMember(ctx, actorID, groupID, userID); errRemove != nil {
		return ctrl.ErrorResponse(c, errRemove)
	}

	return ctrl.SuccessResponse(c, nil, "remove member success")
}

func (ctrl *GroupController) GetMembers(c echo.Context) error {
	ctx := c.Request().Context()

	groupID := utils.ToUUID(c.Param("id"))

	members, errGet := ctrl.GroupService.GetMembers(ctx, groupID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, members, "get members success")
}
