package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Sanagocat/My-blog-back-end/internal/logger"
	"github.com/Sanagocat/My-blog-back-end/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "userdata" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new account record and returns the fully populated
// [models.User] with the server-assigned CreatedAt.
//
// The INSERT uses the [createUser] query which returns all columns via a
// RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUserAlreadyExists]. The
//     constraint, not the service-level pre-check, is what actually closes
//     the check-then-insert race between concurrent registrations.
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	row := r.db.QueryRowContext(ctx, createUser, user.UserID, user.PasswordHash, user.Username)

	var created models.User
	if err := row.Scan(&created.UserID, &created.PasswordHash, &created.Username, &created.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrUserAlreadyExists
		}

		r.db.logStorageError(ctx, "userRepository.CreateUser", err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByUserID retrieves the account record whose userid matches the
// given identifier.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUserID(ctx context.Context, userID string) (models.User, error) {
	var found models.User
	row := r.db.QueryRowContext(ctx, findUserByUserID, userID)

	if err := row.Scan(&found.UserID, &found.PasswordHash, &found.Username, &found.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		r.db.logStorageError(ctx, "userRepository.FindUserByUserID", err)
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
