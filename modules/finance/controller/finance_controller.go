package controller

import (
	"crewhub/core/controller"
	"crewhub/core/errors"
	"crewhub/core/middleware"
	"crewhub/core/params"
	"crewhub/core/utils"
	"crewhub/modules/finance/dto"
	"crewhub/modules/finance/service"

	"github.com/labstack/echo/v4"
)

type FinanceController struct {
	controller.BaseController
	FinanceService service.FinanceServiceInterface
}

func NewFinanceController(svc service.FinanceServiceInterface) *FinanceController {
	return &FinanceController{
		BaseController: controller.NewBaseController(),
		FinanceService: svc,
	}
}

func (ctrl *FinanceController) CreateTransaction(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	requestData := new(dto.CreateTransactionRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.BadRequest(errors.ErrInvalidRequestData, "Invalid request data", nil)
	}

	tx, errCreate := ctrl.FinanceService.Create(ctx, userID, requestData)
	if errCreate != nil {
		return ctrl.ErrorResponse(c, errCreate)
	}

	return ctrl.SuccessResponse(c, tx, "create transaction success")
}

func (ctrl *FinanceController) GetGroupTransactions(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("groupId"))
	dateRange := params.NewDateRange(c)

	txs, errGet := ctrl.FinanceService.ListByGroup(ctx, userID, groupID, dateRange.From, dateRange.To)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, txs, "get transactions success")
}

func (ctrl *FinanceController) DeleteTransaction(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	txID := utils.ToUUID(c.Param("id"))

	if errDelete := ctrl.FinanceService.Delete(ctx, userID, txID); errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}

	return ctrl.SuccessResponse(c, nil, "delete transaction success")
}

func (ctrl *FinanceController) GetFinanceSummary(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return ctrl.Unauthorized(errors.ErrUnauthorized, "Unauthorized", nil)
	}

	groupID := utils.ToUUID(c.Param("groupId"))
	dateRange := params.NewDateRange(c)

	summary, errGet := ctrl.FinanceService.Summary(ctx, userID, groupID, dateRange.From, dateRange.To)
	if errGet != nil {
		return ctrl.ErrorResponse(c, errGet)
	}

	return ctrl.SuccessResponse(c, summary, "get finance summary success")
}
