package repository

import (
	"context"
	"database/sql"

	"crewhub/core/database"
	"crewhub/core/logger"
	"crewhub/modules/notification/entity"

	"github.com/google/uuid"
)

type NotificationRepository struct {
	DB database.Database
}

type NotificationRepositoryInterface interface {
	Create(ctx context.Context, n *entity.Notification) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

func NewNotificationRepository(db database.Database) *NotificationRepository {
	return &NotificationRepository{DB: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	query := `
		INSERT INTO notifications (user_id, title, message, type, link, data)
		VALUES (:user_id, :title, :message, :type, :link, :data)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, n)
	if err != nil {
		logger.Error("NotificationRepository:Create", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&n.ID)
	}
	return nil
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]entity.Notification, error) {
	query := `
		SELECT id, user_id, title, message, type, link, data, is_read, created_at, updated_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	var notifications []entity.Notification
	err := r.DB.SelectContext(ctx, &notifications, query, userID, limit)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("NotificationRepository:ListByUser", err)
		return nil, err
	}
	return notifications, nil
}

func (r *NotificationRepository) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false`
	err := r.DB.GetContext(ctx, &count, query, userID)
	if err != nil {
		logger.Error("NotificationRepository:UnreadCount", err)
		return 0, err
	}
	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET is_read = true, updated_at = now()
		WHERE id = $1 AND user_id = $2
	`
	err := r.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		logger.Error("NotificationRepository:MarkRead", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE notifications
		SET is_read = true, updated_at = now()
		WHERE user_id = $1 AND is_read = false
	`
	err := r.DB.ExecContext(ctx, query, userID)
	if err != nil {
		logger.Error("NotificationRepository:MarkAllRead", err)
		return err
	}
	return nil
}
