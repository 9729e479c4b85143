package service

import (
	"context"

	"crewhub/core/constants"
	"crewhub/core/errors"
	"crewhub/core/logger"
	"crewhub/core/queue"
	"crewhub/modules/notification/dto"
	"crewhub/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo  repository.NotificationRepositoryInterface
	queue queue.ClientInterface
}

type NotificationServiceInterface interface {
	List(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, *errors.AppError)
	UnreadCount(ctx context.Context, userID uuid.UUID) (*dto.UnreadCountResponse, *errors.AppError)
	MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) *errors.AppError
	MarkAllRead(ctx context.Context, userID uuid.UUID) *errors.AppError
	Notify(payload queue.NotificationDispatchPayload)
}

func NewNotificationService(repo repository.NotificationRepositoryInterface, q queue.ClientInterface) NotificationServiceInterface {
	return &NotificationService{repo: repo, queue: q}
}

func (s *NotificationService) List(ctx context.Context, userID uuid.UUID) ([]dto.NotificationResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	notifications, err := s.repo.ListByUser(ctx, userID, constants.NotificationListLimit)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "list notifications failed", err)
	}

	responses := make([]dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = *dto.ToNotificationResponse(&n)
	}
	return responses, nil
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (*dto.UnreadCountResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	count, err := s.repo.UnreadCount(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "unread count failed", err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

func (s *NotificationService) MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.MarkRead(ctx, userID, id); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "mark read failed", err)
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "mark all read failed", err)
	}
	return nil
}

// Notify hands the notification to the background queue. Delivery is best
// effort; a broken queue never fails the calling request.
func (s *NotificationService) Notify(payload queue.NotificationDispatchPayload) {
	if err := s.queue.EnqueueNotification(payload); err != nil {
		logger.Warn("NotificationService:Notify - enqueue failed", "user_id", payload.UserID)
	}
}
