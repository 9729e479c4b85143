package service

import (
	"context"

	"crewhub/core/constants"
	"crewhub/core/errors"
	"crewhub/core/logger"
	"crewhub/core/params"
	"crewhub/core/utils"
	"crewhub/modules/member/dto"
	"crewhub/modules/member/entity"
	"crewhub/modules/member/mapper"
	"crewhub/modules/member/repository"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

type GroupService struct {
	repo repository.GroupRepositoryInterface
}

type GroupServiceInterface interface {
	CreateGroup(ctx context.Context, creatorID uuid.UUID, req *dto.GroupRequest) (*dto.GroupResponse, *errors.AppError)
	GetGroupByID(ctx context.Context, id uuid.UUID) (*dto.GroupResponse, *errors.AppError)
	GetGroups(ctx context.Context, params params.QueryParams) (*dto.PaginatedGroupResponse, *errors.AppError)
	GetMyGroups(ctx context.Context, userID uuid.UUID) ([]dto.GroupResponse, *errors.AppError)
	UpdateGroup(ctx context.Context, userID uuid.UUID, req *dto.GroupRequest, id uuid.UUID) *errors.AppError
	DeleteGroup(ctx context.Context, userID uuid.UUID, id uuid.UUID) *errors.AppError
	JoinGroup(ctx context.Context, userID uuid.UUID, req *dto.JoinGroupRequest) (*dto.GroupResponse, *errors.AppError)
	LeaveGroup(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) *errors.AppError
	RemoveMember(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, userID uuid.UUID) *errors.AppError
	GetMembers(ctx context.Context, groupID uuid.UUID) (*dto.GroupMembersResponse, *errors.AppError)
	RequireLeader(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) *errors.AppError
	RequireMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) *errors.AppError
}

func NewGroupService(repo repository.GroupRepositoryInterface) GroupServiceInterface {
	return &GroupService{repo: repo}
}

func (s *GroupService) CreateGroup(ctx context.Context, creatorID uuid.UUID, req *dto.GroupRequest) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group := &entity.Group{
		Name:        req.Name,
		Slug:        slug.Make(req.Name) + "-" + utils.GenerateID(),
		Description: req.Description,
		InviteCode:  utils.GenerateID(),
		CreatedBy:   &creatorID,
	}

	if err := s.repo.CreateGroup(ctx, group); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "create group failed", err)
	}

	// The creator becomes the group leader.
	if err := s.repo.AddMember(ctx, group.ID, creatorID, entity.RoleLeader); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "add creator to group failed", err)
	}

	return mapper.ToGroupResponse(group), nil
}

func (s *GroupService) GetGroupByID(ctx context.Context, id uuid.UUID) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, err := s.repo.GetGroupByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get group failed", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "group not found", nil)
	}
	return mapper.ToGroupResponse(group), nil
}

func (s *GroupService) GetGroups(ctx context.Context, params params.QueryParams) (*dto.PaginatedGroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	logger.Info("GroupService:GetGroups:Request", "page_number", params.PageNumber, "page_size", params.PageSize, "search", params.Search)
	groups, err := s.repo.GetGroups(ctx, params)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get groups failed", err)
	}
	return mapper.ToGroupPaginationResponse(groups), nil
}

func (s *GroupService) GetMyGroups(ctx context.Context, userID uuid.UUID) ([]dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	groups, err := s.repo.GetGroupsByUserID(ctx, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get my groups failed", err)
	}

	responses := make([]dto.GroupResponse, len(groups))
	for i, g := range groups {
		responses[i] = *mapper.ToGroupResponse(&g)
	}
	return responses, nil
}

func (s *GroupService) UpdateGroup(ctx context.Context, userID uuid.UUID, req *dto.GroupRequest, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.RequireLeader(ctx, id, userID); appErr != nil {
		return appErr
	}

	group := &entity.Group{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.UpdateGroup(ctx, group, id); err != nil {
		return errors.NewAppError(errors.ErrUpdateFailed, "update group failed", err)
	}
	return nil
}

func (s *GroupService) DeleteGroup(ctx context.Context, userID uuid.UUID, id uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.RequireLeader(ctx, id, userID); appErr != nil {
		return appErr
	}

	if err := s.repo.DeleteGroup(ctx, id); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "delete group failed", err)
	}
	return nil
}

func (s *GroupService) JoinGroup(ctx context.Context, userID uuid.UUID, req *dto.JoinGroupRequest) (*dto.GroupResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, err := s.repo.GetGroupByInviteCode(ctx, req.InviteCode)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "lookup invite code failed", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "invalid invite code", nil)
	}

	if err := s.repo.AddMember(ctx, group.ID, userID, entity.RoleMember); err != nil {
		return nil, errors.NewAppError(errors.ErrCreateFailed, "join group failed", err)
	}

	return mapper.ToGroupResponse(group), nil
}

func (s *GroupService) LeaveGroup(ctx context.Context, userID uuid.UUID, groupID uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if err := s.repo.RemoveMember(ctx, groupID, userID); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "leave group failed", err)
	}
	return nil
}

func (s *GroupService) RemoveMember(ctx context.Context, actorID uuid.UUID, groupID uuid.UUID, userID uuid.UUID) *errors.AppError {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := s.RequireLeader(ctx, groupID, actorID); appErr != nil {
		return appErr
	}

	if err := s.repo.RemoveMember(ctx, groupID, userID); err != nil {
		return errors.NewAppError(errors.ErrDeleteFailed, "remove member failed", err)
	}
	return nil
}

func (s *GroupService) GetMembers(ctx context.Context, groupID uuid.UUID) (*dto.GroupMembersResponse, *errors.AppError) {
	ctx, cancel := context.WithTimeout(ctx, constants.DefaultRequestTimeout)
	defer cancel()

	group, err := s.repo.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get group failed", err)
	}
	if group == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "group not found", nil)
	}

	members, err := s.repo.GetMembers(ctx, groupID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "get members failed", err)
	}

	memberResponses := make([]dto.MemberResponse, len(members))
	for i, m := range members {
		memberResponses[i] = *mapper.ToMemberResponse(&m)
	}

	return &dto.GroupMembersResponse{
		GroupID: groupID,
		Group: &dto.GroupInfo{
			ID:          group.ID,
			Name:        group.Name,
			Slug:        group.Slug,
			Description: group.Description,
		},
		Members: memberResponses,
	}, nil
}

// RequireLeader returns a forbidden error unless the user is the group's
// leader.
func (s *GroupService) RequireLeader(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) *errors.AppError {
	role, err := s.repo.GetMemberRole(ctx, groupID, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get member role failed", err)
	}
	if role != entity.RoleLeader {
		return errors.NewAppError(errors.ErrForbidden, "leader role required", nil)
	}
	return nil
}

// RequireMember returns a forbidden error unless the user belongs to the
// group with any role.
func (s *GroupService) RequireMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) *errors.AppError {
	role, err := s.repo.GetMemberRole(ctx, groupID, userID)
	if err != nil {
		return errors.NewAppError(errors.ErrGetFailed, "get member role failed", err)
	}
	if role == "" {
		return errors.NewAppError(errors.ErrForbidden, "group membership required", nil)
	}
	return nil
}
