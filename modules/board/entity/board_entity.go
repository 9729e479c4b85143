package entity

import (
	"crewhub/core/entity"

	"github.com/google/uuid"
)

// Post is a message-board entry. AuthorName is populated by the join in the
// repository and never written.
type Post struct {
	GroupID       uuid.UUID `db:"group_id" json:"group_id"`
	AuthorID      uuid.UUID `db:"author_id" json:"author_id"`
	AuthorName    string    `db:"author_name" json:"author_name"`
	Title         string    `db:"title" json:"title"`
	Content       string    `db:"content" json:"content"`
	AttachmentURL *string   `db:"attachment_url" json:"attachment_url,omitempty"`
	CommentCount  int       `db:"comment_count" json:"comment_count"`

	entity.BaseEntity
}

type Comment struct {
	PostID     uuid.UUID `db:"post_id" json:"post_id"`
	AuthorID   uuid.UUID `db:"author_id" json:"author_id"`
	AuthorName string    `db:"author_name" json:"author_name"`
	Content    string    `db:"content" json:"content"`

	entity.BaseEntity
}

type PaginatedPosts = entity.Pagination[Post]
