package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"crewhub/core/database"
	"crewhub/core/logger"
	"crewhub/core/params"
	"crewhub/modules/board/entity"

	"github.com/google/uuid"
)

type BoardRepository struct {
	DB database.Database
}

type BoardRepositoryInterface interface {
	CreatePost(ctx context.Context, post *entity.Post) error
	GetPostByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	GetPosts(ctx context.Context, groupID uuid.UUID, params params.QueryParams) (*entity.PaginatedPosts, error)
	UpdatePost(ctx context.Context, id uuid.UUID, title string, content string) error
	DeletePost(ctx context.Context, id uuid.UUID) error
	CreateComment(ctx context.Context, comment *entity.Comment) error
	GetComments(ctx context.Context, postID uuid.UUID) ([]entity.Comment, error)
	GetCommentByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	DeleteComment(ctx context.Context, id uuid.UUID) error
}

func NewBoardRepository(db database.Database) *BoardRepository {
	return &BoardRepository{DB: db}
}

func (r *BoardRepository) CreatePost(ctx context.Context, post *entity.Post) error {
	query := `
		INSERT INTO board_posts (group_id, author_id, title, content, attachment_url)
		VALUES (:group_id, :author_id, :title, :content, :attachment_url)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, post)
	if err != nil {
		logger.Error("BoardRepository:CreatePost", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&post.ID)
	}
	return nil
}

const postColumns = `
	p.id, p.group_id, p.author_id, u.name AS author_name, p.title, p.content,
	p.attachment_url, p.created_at, p.updated_at,
	(SELECT COUNT(*) FROM board_comments c WHERE c.post_id = p.id) AS comment_count
`

func (r *BoardRepository) GetPostByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var post entity.Post
	query := `
		SELECT ` + postColumns + `
		FROM board_posts p
		JOIN users u ON u.id = p.author_id
		WHERE p.id = $1
	`
	err := r.DB.GetContext(ctx, &post, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BoardRepository:GetPostByID", err)
		return nil, err
	}
	return &post, nil
}

func (r *BoardRepository) GetPosts(ctx context.Context, groupID uuid.UUID, params params.QueryParams) (*entity.PaginatedPosts, error) {
	offset := (params.PageNumber - 1) * params.PageSize

	baseQuery := `FROM board_posts p JOIN users u ON u.id = p.author_id`

	conditions := []string{"p.group_id = $1"}
	args := []interface{}{groupID}
	argIndex := 2

	if params.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(p.title ILIKE $%d OR p.content ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+params.Search+"%")
		argIndex++
	}

	whereClause := " WHERE " + strings.Join(conditions, " AND ")

	countQuery := "SELECT COUNT(*) " + baseQuery + whereClause

	var totalItems int
	err := r.DB.GetContext(ctx, &totalItems, countQuery, args...)
	if err != nil {
		logger.Error("BoardRepository:GetPosts - Count", err)
		return nil, err
	}

	dataQuery := `
		SELECT ` + postColumns + `
	` + baseQuery + whereClause + `
		ORDER BY p.created_at DESC
		LIMIT $` + fmt.Sprintf("%d", argIndex) + ` OFFSET $` + fmt.Sprintf("%d", argIndex+1)

	args = append(args, params.PageSize, offset)

	var posts []entity.Post
	err = r.DB.SelectContext(ctx, &posts, dataQuery, args...)
	if err != nil {
		logger.Error("BoardRepository:GetPosts - Select", err)
		return nil, err
	}

	return &entity.PaginatedPosts{
		Items:      posts,
		TotalItems: totalItems,
		PageNumber: params.PageNumber,
		PageSize:   params.PageSize,
	}, nil
}

func (r *BoardRepository) UpdatePost(ctx context.Context, id uuid.UUID, title string, content string) error {
	query := `
		UPDATE board_posts
		SET title = $1, content = $2, updated_at = now()
		WHERE id = $3
	`
	err := r.DB.ExecContext(ctx, query, title, content, id)
	if err != nil {
		logger.Error("BoardRepository:UpdatePost", err)
		return err
	}
	return nil
}

func (r *BoardRepository) DeletePost(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM board_posts WHERE id = $1`, id)
	if err != nil {
		logger.Error("BoardRepository:DeletePost", err)
		return err
	}
	return nil
}

func (r *BoardRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	query := `
		INSERT INTO board_comments (post_id, author_id, content)
		VALUES (:post_id, :author_id, :content)
		RETURNING id
	`
	rows, err := r.DB.NamedQueryContext(ctx, query, comment)
	if err != nil {
		logger.Error("BoardRepository:CreateComment", err)
		return err
	}
	defer rows.Close()

	if rows.Next() {
		return rows.Scan(&comment.ID)
	}
	return nil
}

func (r *BoardRepository) GetComments(ctx context.Context, postID uuid.UUID) ([]entity.Comment, error) {
	query := `
		SELECT c.id, c.post_id, c.author_id, u.name AS author_name, c.content, c.created_at, c.updated_at
		FROM board_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at ASC
	`
	var comments []entity.Comment
	err := r.DB.SelectContext(ctx, &comments, query, postID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BoardRepository:GetComments", err)
		return nil, err
	}
	return comments, nil
}

func (r *BoardRepository) GetCommentByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var comment entity.Comment
	query := `
		SELECT c.id, c.post_id, c.author_id, u.name AS author_name, c.content, c.created_at, c.updated_at
		FROM board_comments c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1
	`
	err := r.DB.GetContext(ctx, &comment, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		logger.Error("BoardRepository:GetCommentByID", err)
		return nil, err
	}
	return &comment, nil
}

func (r *BoardRepository) DeleteComment(ctx context.Context, id uuid.UUID) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM board_comments WHERE id = $1`, id)
	if err != nil {
		logger.Error("BoardRepository:DeleteComment", err)
		return err
	}
	return nil
}
