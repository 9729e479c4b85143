package mapper

import (
	"crewhub/modules/member/dto"
	"crewhub/modules/member/entity"
)

func ToGroupResponse(group *entity.Group) *dto.GroupResponse {
	return &dto.GroupResponse{
		ID:          group.ID,
		Name:        group.Name,
		Slug:        group.Slug,
		Description: group.Description,
		InviteCode:  group.InviteCode,
		CreatedAt:   group.CreatedAt,
		UpdatedAt:   group.UpdatedAt,
	}
}

func ToGroupPaginationResponse(entity *entity.PaginatedGroupResponse) *dto.PaginatedGroupResponse {
	if entity == nil {
		return &dto.PaginatedGroupResponse{
			Items: []dto.GroupResponse{},
		}
	}

	groupResponses := make([]dto.GroupResponse, len(entity.Items))
	for i, group := range entity.Items {
		groupResponses[i] = *ToGroupResponse(&group)
	}

	totalPages := 0
	if entity.PageSize > 0 {
		totalPages = (entity.TotalItems + entity.PageSize - 1) / entity.PageSize
	}

	return &dto.PaginatedGroupResponse{
		Items:      groupResponses,
		TotalItems: entity.TotalItems,
		TotalPages: totalPages,
		PageNumber: entity.PageNumber,
		PageSize:   entity.PageSize,
	}
}

func ToMemberResponse(m *entity.MemberProfile) *dto.MemberResponse {
	return &dto.MemberResponse{
		UserID:    m.UserID,
		Name:      m.Name,
		AvatarURL: m.AvatarURL,
		Role:      m.Role,
		JoinedAt:  m.JoinedAt,
	}
}
