package store

import (
	"github.com/Sanagocat/My-blog-back-end/internal/logger"
)

// Repositories aggregates all data-access implementations behind their
// interfaces so the service layer receives a single dependency.
type Repositories struct {
	UserRepository UserRepository
	PostRepository PostRepository
}

// NewRepositories wires every repository to the shared database handle.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository: NewUserRepository(db, logger),
		PostRepository: NewPostRepository(db, logger),
	}
}
