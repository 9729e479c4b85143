package dto

import (
	"encoding/json"
	"time"

	"crewhub/modules/notification/entity"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Message   string          `json:"message"`
	Type      string          `json:"type"`
	Link      *string         `json:"link,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	IsRead    bool            `json:"is_read"`
	CreatedAt time.Time       `json:"created_at"`
}

func ToNotificationResponse(n *entity.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Link:      n.Link,
		Data:      json.RawMessage(n.Data),
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}
