package domain

import (
	"context"
	"time"
)

// Comment domain model. Immutable except for deletion.
type Comment struct {
	ID        int64     `json:"id"`
	ArticleID int64     `json:"article_id"`
	UserID    int64     `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`

	// User 评论作者信息
	User *User `json:"user,omitempty"`
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	// Create validates and stores a comment authored by userID on articleID.
	// Returns ErrBadParamInput if the content trims to empty, ErrNotFound
	// if the article or the user does not exist.
	Create(ctx context.Context, articleID, userID int64, content string) (Comment, error)

	// Delete removes a comment on behalf of requesterID. The requester must
	// be the comment author or hold the ADMIN role, else ErrForbidden.
	Delete(ctx context.Context, commentID, requesterID int64) error

	// FetchByArticle lists an article's comments, newest first.
	FetchByArticle(ctx context.Context, articleID int64) ([]Comment, error)
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Store(ctx context.Context, c *Comment) error
	GetByID(ctx context.Context, id int64) (Comment, error)
	Delete(ctx context.Context, id int64) error
	// FetchByArticle 按创建时间倒序获取文章的全部评论
	FetchByArticle(ctx context.Context, articleID int64) ([]Comment, error)
}
