package service

import (
	"github.com/Sanagocat/My-blog-back-end/internal/config"
	"github.com/Sanagocat/My-blog-back-end/internal/crypto"
	"github.com/Sanagocat/My-blog-back-end/internal/logger"
	"github.com/Sanagocat/My-blog-back-end/internal/store"
)

type Services struct {
	AuthService AuthService
	PostService PostService
}

func NewServices(repositories *store.Repositories, cfg config.Auth, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(repositories.UserRepository, crypto.NewPasswordHasher(), cfg, logger),
		PostService: NewPostService(repositories.PostRepository, logger),
	}
}
