package entity

import (
	"time"

	"crewhub/core/entity"

	"github.com/google/uuid"
)

type Group struct {
	Name        string     `db:"name" json:"name"`
	Slug        string     `db:"slug" json:"slug"`
	Description string     `db:"description" json:"description"`
	InviteCode  string     `db:"invite_code" json:"invite_code"`
	CreatedBy   *uuid.UUID `db:"created_by" json:"created_by,omitempty"`

	entity.BaseEntity
}

type PaginatedGroupResponse = entity.Pagination[Group]

// Member roles within a group.
const (
	RoleLeader = "leader"
	RoleMember = "member"
)

type GroupMember struct {
	GroupID  uuid.UUID `db:"group_id" json:"group_id"`
	UserID   uuid.UUID `db:"user_id" json:"user_id"`
	Role     string    `db:"role" json:"role"`
	JoinedAt time.Time `db:"joined_at" json:"joined_at"`

	entity.BaseEntity
}

// MemberProfile is the membership row joined with the user profile, the
// shape the analytics layer consumes.
type MemberProfile struct {
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	AvatarURL *string   `db:"avatar_url" json:"avatar_url,omitempty"`
	Role      string    `db:"role" json:"role"`
	JoinedAt  time.Time `db:"joined_at" json:"joined_at"`
}
