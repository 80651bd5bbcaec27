package store

import (
	"context"

	"github.com/Sanagocat/My-blog-back-end/models"
)

// UserRepository is the credential store adapter consumed by the auth
// service. Uniqueness of UserID is enforced by the database constraint;
// CreateUser surfaces a violation as [ErrUserAlreadyExists].
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUserID(ctx context.Context, userID string) (models.User, error)
}

// PostRepository is the data-access layer for blog posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context, query models.PostListQuery) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, id int64) error
}
