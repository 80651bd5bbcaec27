package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sanagocat/My-blog-back-end/internal/config"
	"github.com/Sanagocat/My-blog-back-end/internal/crypto"
	"github.com/Sanagocat/My-blog-back-end/internal/logger"
	"github.com/Sanagocat/My-blog-back-end/internal/store"
	"github.com/Sanagocat/My-blog-back-end/internal/utils"
	"github.com/Sanagocat/My-blog-back-end/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenDuration is the fixed validity window of every issued session token.
// There is no refresh mechanism; expiry forces a fresh login.
const TokenDuration = 12 * time.Hour

// minPasswordLength is the minimum accepted password length. Documented weak
// policy, kept for compatibility with accounts registered by older clients.
const minPasswordLength = 4

// authService is the concrete implementation of AuthService.
// It composes the credential store, the bcrypt password hasher, and the JWT
// issue/verify helpers into the register, login, and token-verification flows.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher is the one-way password hashing primitive. Only hashes ever
	// cross into the repository; plaintext never leaves this service.
	hasher crypto.PasswordHasher

	// tokenSignKey is the process-wide symmetric secret used to sign and
	// verify session tokens. Read-only after construction.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued token.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher, with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// Flow: duplicate pre-check, password policy check, bcrypt hash, insert.
// The pre-check is advisory only; the database unique constraint is the
// authoritative uniqueness guard, and a constraint violation surfaces as the
// same [store.ErrUserAlreadyExists] so concurrent registrations of one
// userid cannot both succeed.
//
// Returns the persisted user with all credential fields scrubbed, or:
//   - ErrInvalidDataProvided if UserID is empty.
//   - store.ErrUserAlreadyExists if the userid is taken.
//   - ErrPasswordTooShort if the password has fewer than four characters,
//     the empty password included.
//   - A wrapped storage error for any other repository failure.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.UserID == "" {
		log.Error().Msg("no userid provided")
		return models.User{}, ErrInvalidDataProvided
	}

	// fast path for the common case; the unique constraint has the final say
	_, err := a.userRepository.FindUserByUserID(ctx, user.UserID)
	if err == nil {
		return models.User{}, store.ErrUserAlreadyExists
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("userid", user.UserID).Msg("duplicate pre-check failed")
		return models.User{}, fmt.Errorf("duplicate pre-check failed: %w", err)
	}

	if len(user.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	hash, err := a.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("userid", user.UserID).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		UserID:       user.UserID,
		PasswordHash: hash,
		Username:     user.Username,
	})
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, store.ErrUserAlreadyExists
		}
		log.Err(err).Str("userid", user.UserID).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return scrubCredentials(registeredUser), nil
}

// Login authenticates an existing user and issues a session token.
//
// Returns the account record (credentials scrubbed) and the signed token, or:
//   - ErrInvalidDataProvided if UserID is empty.
//   - store.ErrNoUserWasFound if the userid is unknown.
//   - ErrWrongPassword if the bcrypt comparison fails. An empty password is
//     not special-cased; it goes through the comparison like any other
//     wrong password.
//   - A wrapped ErrTokenCreationFailed if token signing fails.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if user.UserID == "" {
		log.Error().Msg("no userid provided")
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUserID(ctx, user.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, models.Token{}, store.ErrNoUserWasFound
		}
		log.Err(err).Str("userid", user.UserID).Msg("user search by userid failed")
		return models.User{}, models.Token{}, fmt.Errorf("user search by userid failed: %w", err)
	}

	if !a.hasher.Verify(user.Password, foundUser.PasswordHash) {
		log.Warn().Str("userid", foundUser.UserID).Msg("wrong password")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, foundUser.UserID, foundUser.Username, TokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("userid", foundUser.UserID).Msg("token creation failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return scrubCredentials(foundUser), token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and the expiry. Expiry is reported as ErrTokenIsExpired;
// every other validation failure is normalised to ErrTokenIsExpiredOrInvalid
// so that callers do not need to inspect low-level JWT errors. Both outcomes
// deny access; the distinction exists only for response selection.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// scrubCredentials clears every credential-bearing field before a user
// record leaves the auth service. Neither the plaintext password nor the
// stored hash is ever returned to a caller.
func scrubCredentials(user models.User) models.User {
	user.Password = ""
	user.PasswordHash = ""
	return user
}
