package entity

import (
	"crewhub/core/entity"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx/types"
)

type NotificationType string

const (
	TypeSchedule NotificationType = "schedule"
	TypeBoard    NotificationType = "board"
	TypeMember   NotificationType = "member"
	TypeFinance  NotificationType = "finance"
	TypeSystem   NotificationType = "system"
)

type Notification struct {
	UserID  uuid.UUID        `db:"user_id" json:"user_id"`
	Title   string           `db:"title" json:"title"`
	Message string           `db:"message" json:"message"`
	Type    NotificationType `db:"type" json:"type"`
	Link    *string          `db:"link" json:"link,omitempty"`
	Data    types.JSONText   `db:"data" json:"data,omitempty"`
	IsRead  bool             `db:"is_read" json:"is_read"`

	entity.BaseEntity
}
