package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"crewhub/core/database"
	"crewhub/core/logger"
	"crewhub/core/params"
	"crewhub/modules/member/entity"

	"github.com/google/uuid"
)

type GroupRepository struct {
	DB database.Database
}

type GroupRepositoryInterface interface {
	CreateGroup(ctx context.Context, group *entity.Group) error
	UpdateGroup(ctx context.Context, group *entity.Group, id uuid.UUID) error
	DeleteGroup(ctx context.Context, id uuid.UUID) error
	GetGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)
	GetGroupByInviteCode(ctx context.Context, code string) (*entity.Group, error)
	GetGroups(ctx context.Context, params params.QueryParams) (*entity.PaginatedGroupResponse, error)

	AddMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID, role string) error
	RemoveMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error
	GetMemberRole(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) (string, error)
	GetMembers(ctx context.Context, groupID uuid.UUID) ([]entity.MemberProfile, error)
	GetGroupsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Group, error)
}

func NewGroupRepository(db database.Database) *GroupRepository {
	return &GroupRepository{DB: db}
}

func (r *GroupRepository) CreateGroup(ctx context.Context, group *entity.Group) error {
	query := `
		INSERT INTO groups (name, slug, description, invite_code, created_by)
		VALUES (:name, :slug, :description, :invite_code, :created_by)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, group)
	if err != nil {
		logger.Error("GroupRepository:CreateGroup", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&group.ID)
	}
	return nil
}

func (r *GroupRepository) UpdateGroup(ctx context.Context, group *entity.Group, id uuid.UUID) error {
	query := `
		UPDATE groups
		SET name = $1, description = $2, updated_at = now()
		WHERE id = $3
	`
	result, err := r.DB.SQLx().ExecContext(ctx, query, group.Name, group.Description, id)
	if err != nil {
		logger.Error("GroupRepository:UpdateGroup", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("GroupRepository:UpdateGroup - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("group with id %s not found", id)
	}

	return nil
}

func (r *GroupRepository) DeleteGroup(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM groups
		WHERE id = :id
	`
	_, err := r.DB.NamedExecContext(ctx, query, map[string]any{"id": id})
	if err != nil {
		logger.Error("GroupRepository:DeleteGroup", err)
		return err
	}
	return nil
}

func (r *GroupRepository) GetGroupByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var group entity.Group
	query := `
		SELECT id, name, slug, description, invite_code, created_by, created_at, updated_at
		FROM groups
		WHERE id = $1
	`
	err := r.DB.GetContext(ctx, &group, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetGroupByID", err)
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) GetGroupByInviteCode(ctx context.Context, code string) (*entity.Group, error) {
	var group entity.Group
	query := `
		SELECT id, name, slug, description, invite_code, created_by, created_at, updated_at
		FROM groups
		WHERE invite_code = $1
	`
	err := r.DB.GetContext(ctx, &group, query, code)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("GroupRepository:GetGroupByInviteCode", err)
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) GetGroups(ctx context.Context, params params.QueryParams) (*entity.PaginatedGroupResponse, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM groups`

	var whereClause string
	var args []interface{}

	conditions := []string{}
	argIndex := 1

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIndex))
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) " + baseQuery + whereClause

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, countQuery, args...)
	if err != nil {
		logger.Error("GroupRepository:GetGroups - Count", err)
		return nil, err
	}

	dataQuery := `
		SELECT id, name, slug, description, invite_code, created_by, created_at, updated_at
	` + baseQuery + whereClause + `
		ORDER BY created_at DESC
		LIMIT $` + fmt.Sprintf("%d", argIndex) + ` OFFSET $` + fmt.Sprintf("%d", argIndex+1)

	args = append(args, params.PageSize, offset)

	var groups []entity.Group
	err = r.DB.SelectContext(ctx, &groups, dataQuery, args...)
	if err != nil {
		logger.Error("GroupRepository:GetGroups - Select", err)
		return nil, err
	}

	return &entity.PaginatedGroupResponse{
		Items:      groups,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *GroupRepository) AddMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID, role string) error {
	query := `
		INSERT INTO group_members (group_id, user_id, role, joined_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (group_id, user_id) DO NOTHING
	`
	err := r.DB.ExecContext(ctx, query, groupID, userID, role)
	if err != nil {
		logger.Error("GroupRepository:AddMember", err)
		return err
	}
	return nil
}

func (r *GroupRepository) RemoveMember(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) error {
	query := `
		DELETE FROM group_members
		WHERE group_id = $1 AND user_id = $2
	`
	result, err := r.DB.SQLx().ExecContext(ctx, query, groupID, userID)
	if err != nil {
		logger.Error("GroupRepository:RemoveMember", err)
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		logger.Error("GroupRepository:RemoveMember - RowsAffected", err)
		return err
	}
	if rowsAffected == 0 {
		return fmt.Errorf("user %s is not in group %s", userID, groupID)
	}

	return nil
}

func (r *GroupRepository) GetMemberRole(ctx context.Context, groupID uuid.UUID, userID uuid.UUID) (string, error) {
	var role string
	query := `
		SELECT role FROM group_members
		WHERE group_id = $1 AND user_id = $2
	`
	err := r.DB.GetContext(ctx, &role, query, groupID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		logger.Error("GroupRepository:GetMemberRole", err)
		return "", err
	}
	return role, nil
}

func (r *GroupRepository) GetMembers(ctx context.Context, groupID uuid.UUID) ([]entity.MemberProfile, error) {
	query := `
		SELECT gm.user_id, u.name, u.avatar_url, gm.role, gm.joined_at
		FROM group_members gm
		JOIN users u ON u.id = gm.user_id
		WHERE gm.group_id = $1
		ORDER BY gm.joined_at ASC
	`
	var members []entity.MemberProfile
	err := r.DB.SelectContext(ctx, &members, query, groupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.MemberProfile{}, nil
		}
		logger.Error("GroupRepository:GetMembers", err)
		return nil, err
	}
	return members, nil
}

func (r *GroupRepository) GetGroupsByUserID(ctx context.Context, userID uuid.UUID) ([]entity.Group, error) {
	query := `
		SELECT g.id, g.name, g.slug, g.description, g.invite_code, g.created_by, g.created_at, g.updated_at
		FROM groups g
		JOIN group_members gm ON gm.group_id = g.id
		WHERE gm.user_id = $1
		ORDER BY gm.joined_at DESC
	`
	var groups []entity.Group
	err := r.DB.SelectContext(ctx, &groups, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return []entity.Group{}, nil
		}
		logger.Error("GroupRepository:GetGroupsByUserID", err)
		return nil, err
	}
	return groups, nil
}
