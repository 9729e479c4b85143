package dto

import (
	"time"

	"crewhub/core/dto"

	"github.com/google/uuid"
)

type GroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type GroupResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	InviteCode  string    `json:"invite_code,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type PaginatedGroupResponse = dto.Pagination[GroupResponse]

type JoinGroupRequest struct {
	InviteCode string `json:"invite_code"`
}

type MemberResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}

type GroupMembersResponse struct {
	GroupID uuid.UUID        `json:"group_id"`
	Group   *GroupInfo       `json:"group,omitempty"`
	Members []MemberResponse `json:"members"`
}

type GroupInfo struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
}
