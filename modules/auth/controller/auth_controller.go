package controller

import (
	"strings"

	"crewhub/core/controller"
	"crewhub/core/errors"
	"crewhub/core/middleware"
	"crewhub/modules/auth/dto"
	"crewhub/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(svc service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    svc,
	}
}

func (ctrl *AuthController) Register(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.RegisterRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}
	if requestData.Email == "" || requestData.Password == "" || requestData.Name == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "email, password and name are required", nil)
	}

	tokens, errReg := ctrl.AuthService.Register(ctx, requestData)
	if errReg != nil {
		return ctrl.ErrorResponse(c, errReg)
	}

	return ctrl.SuccessResponse(c, tokens, "register success")
}

func (ctrl *AuthController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	tokens, errLogin := ctrl.AuthService.Login(ctx, requestData)
	if errLogin != nil {
		return ctrl.ErrorResponse(c, errLogin)
	}

	return ctrl.SuccessResponse(c, tokens, "login success")
}

func (ctrl *AuthController) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.RefreshRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	tokens, errRefresh := ctrl.AuthService.Refresh(ctx, requestData)
	if errRefresh != nil {
		return ctrl.ErrorResponse(c, errRefresh)
	}

	return ctrl.SuccessResponse(c, tokens, "refresh success")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		return ctrl.Unauthorized(errors.ErrMissingAuthorizationHeader, "missing bearer token", nil)
	}

	if errLogout := ctrl.AuthService.Logout(ctx, token); errLogout != nil {
		return ctrl.ErrorResponse(c, errLogout)
	}

	return ctrl.SuccessResponse(c, nil, "logout success")
}

func (ctrl *AuthController) Me(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	user, errGet := ctrl.AuthService.Me(ctx, userID)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, user, "get profile success")
}

func (ctrl *AuthController) GoogleLogin(c echo.Context) error {
	ctx := c.Request().Context()

	resp, errURL := ctrl.AuthService.GoogleLoginURL(ctx)
	if errURL != nil {
		return ctrl.ErrorResponse(c, errURL)
	}

	return ctrl.SuccessResponse(c, resp, "google login url")
}

func (ctrl *AuthController) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	state := c.QueryParam("state")
	code := c.QueryParam("code")
	if state == "" || code == "" {
		return ctrl.BadRequest(errors.ErrInvalidInput, "state and code are required", nil)
	}

	tokens, errCb := ctrl.AuthService.GoogleCallback(ctx, state, code)
	if errCb != nil {
		return ctrl.ErrorResponse(c, errCb)
	}

	return ctrl.SuccessResponse(c, tokens, "google login success")
}
