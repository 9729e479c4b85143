package service

import (
	"context"
	"encoding/json"
	"fmt"

	"crewhub/core/cache"
	"crewhub/core/constants"
	"crewhub/core/errors"
	"crewhub/modules/widget/dto"

	memberservice "crewhub/modules/member/service"

	"github.com/google/uuid"
)

// WidgetService is a small per-group key-value store for board widgets
// (memos, checklists, weekly challenges). Writes are last-writer-wins with
// no read-modify-write guard; concurrent writers overwrite each other and
// callers must not assume atomicity.
type WidgetService struct {
	cache    cache.CacheInterface
	groupSvc memberservice.GroupServiceInterface
}

type WidgetServiceInterface interface {
	Get(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, key string) (*dto.WidgetValue, *errors.AppError)
	Set(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, key string, value json.RawMessage) *errors.AppError
	Delete(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, key string) *errors.AppError
}

func NewWidgetService(c cache.CacheInterface, groupSvc memberservice.GroupServiceInterface) WidgetServiceInterface {
	return &WidgetService{cache: c, groupSvc: groupSvc}
}

func widgetKey(groupID uuid.UUID, key string) string {
	return fmt.Sprintf("%s%s:%s", constants.RedisKeyWidget, groupID, key)
}

func (s *WidgetService) Get(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, key string) (*dto.WidgetValue, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.groupSvc.RequireMember(ctx, groupID, actorID); appErr != nil {
		return nil, appErr
	}

	raw, err := s.cache.Get(ctx, widgetKey(groupID, key))
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get widget failed", err)
	}
	if raw == "" {
		return nil, errors.NewAppError(errors.ErrNotFound, "widget not found", nil)
	}
	return &dto.WidgetValue{Key: key, Value: json.RawMessage(raw)}, nil
}

func (s *WidgetService) Set(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, key string, value json.RawMessage) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if !json.Valid(value) {
		return errors.NewAppError(errors.ErrInvalidInput, "value must be valid JSON", nil)
	}

	if appErr := s.groupSvc.RequireMember(ctx, groupID, actorID); appErr != nil {
		return appErr
	}

	if err := s.cache.Set(ctx, widgetKey(groupID, key), string(value), 0); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "set widget failed", err)
	}
	return nil
}

func (s *WidgetService) Delete(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, key string) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.groupSvc.RequireMember(ctx, groupID, actorID); appErr != nil {
		return appErr
	}

	if err := s.cache.Delete(ctx, widgetKey(groupID, key)); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete widget failed", err)
	}
	return nil
}
