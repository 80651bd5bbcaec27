package service

import (
	"context"

	"github.com/Sanagocat/My-blog-back-end/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type PostService interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	ListPosts(ctx context.Context, limit, page uint64) ([]models.Post, error)
	GetPost(ctx context.Context, id int64) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post) error
	DeletePost(ctx context.Context, id int64) error
}
