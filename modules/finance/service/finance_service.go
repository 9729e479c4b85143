package service

import (
	"context"
	"time"

	"crewhub/core/constants"
	"crewhub/core/errors"
	"crewhub/modules/finance/dto"
	"crewhub/modules/finance/entity"
	"crewhub/modules/finance/repository"

	memberservice "crewhub/modules/member/service"

	"github.com/google/uuid"
)

type FinanceService struct {
	repo     repository.TransactionRepositoryInterface
	groupSvc memberservice.GroupServiceInterface
}

type FinanceServiceInterface interface {
	Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, *errors.AppError)
	ListByGroup(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, from time.Time, to time.Time) ([]dto.TransactionResponse, *errors.AppError)
	Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) *errors.AppError
	Summary(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, from time.Time, to time.Time) (*dto.FinanceSummary, *errors.AppError)
}

func NewFinanceService(repo repository.TransactionRepositoryInterface, groupSvc memberservice.GroupServiceInterface) FinanceServiceInterface {
	return &FinanceService{repo: repo, groupSvc: groupSvc}
}

func (s *FinanceService) Create(ctx context.Context, actorID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	txType := entity.TransactionType(req.Type)
	if !entity.ValidTransactionType(txType) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "type must be income or expense", nil)
	}
	if req.Amount <= 0 {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "amount must be positive", nil)
	}

	occurredAt, err := time.Parse("2006-01-02", req.OccurredAt)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "occurred_at must be YYYY-MM-DD", err)
	}

	if appErr := s.groupSvc.RequireLeader(ctx, req.GroupID, actorID); appErr != nil {
		return nil, appErr
	}

	tx := &entity.Transaction{
		GroupID:     req.GroupID,
		Type:        txType,
		Amount:      req.Amount,
		Description: req.Description,
		OccurredAt:  occurredAt,
		CreatedBy:   &actorID,
	}
	if err := s.repo.Create(ctx, tx); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create transaction failed", err)
	}
	return dto.ToTransactionResponse(tx), nil
}

func (s *FinanceService) ListByGroup(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, from time.Time, to time.Time) ([]dto.TransactionResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.groupSvc.RequireMember(ctx, groupID, actorID); appErr != nil {
		return nil, appErr
	}

	txs, err := s.repo.ListByGroup(ctx, groupID, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list transactions failed", err)
	}

	responses := make([]dto.TransactionResponse, len(txs))
	for i, t := range txs {
		responses[i] = *dto.ToTransactionResponse(&t)
	}
	return responses, nil
}

func (s *FinanceService) Delete(ctx context.Context, actorID uuid.UUID, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	tx, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get transaction failed", err)
	}
	if tx == nil {
		return errors.NewAppError(errors.ErrNotFound, "transaction not found", nil)
	}

	if appErr := s.groupSvc.RequireLeader(ctx, tx.GroupID, actorID); appErr != nil {
		return appErr
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete transaction failed", err)
	}
	return nil
}

func (s *FinanceService) Summary(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, from time.Time, to time.Time) (*dto.FinanceSummary, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.groupSvc.RequireMember(ctx, groupID, actorID); appErr != nil {
		return nil, appErr
	}

	summary, err := s.repo.Summary(ctx, groupID, from, to)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "finance summary failed", err)
	}
	return summary, nil
}
