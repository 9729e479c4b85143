package dto

import (
	"time"

	coredto "crewhub/core/dto"
	"crewhub/modules/board/entity"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	GroupID       uuid.UUID `json:"group_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	AttachmentURL string    `json:"attachment_url"`
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type PostResponse struct {
	ID            uuid.UUID `json:"id"`
	GroupID       uuid.UUID `json:"group_id"`
	AuthorID      uuid.UUID `json:"author_id"`
	AuthorName    string    `json:"author_name"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	AttachmentURL *string   `json:"attachment_url,omitempty"`
	CommentCount  int       `json:"comment_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToPostResponse(p *entity.Post) *PostResponse {
	return &PostResponse{
		ID:            p.ID,
		GroupID:       p.GroupID,
		AuthorID:      p.AuthorID,
		AuthorName:    p.AuthorName,
		Title:         p.Title,
		Content:       p.Content,
		AttachmentURL: p.AttachmentURL,
		CommentCount:  p.CommentCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

type PaginatedPostResponse = coredto.Pagination[PostResponse]

type CreateCommentRequest struct {
	Content string `json:"content"`
}

type CommentResponse struct {
	ID         uuid.UUID `json:"id"`
	PostID     uuid.UUID `json:"post_id"`
	AuthorID   uuid.UUID `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToCommentResponse(c *entity.Comment) *CommentResponse {
	return &CommentResponse{
		ID:         c.ID,
		PostID:     c.PostID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Content:    c.Content,
		CreatedAt:  c.CreatedAt,
	}
}

type UploadResponse struct {
	URL string `json:"url"`
}
