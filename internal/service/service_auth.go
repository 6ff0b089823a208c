package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bookworm-social/bookworm-server/internal/config"
	"github.com/bookworm-social/bookworm-server/internal/logger"
	"github.com/bookworm-social/bookworm-server/internal/store"
	"github.com/bookworm-social/bookworm-server/internal/utils"
	"github.com/bookworm-social/bookworm-server/models"
)

const (
	minPasswordLength = 6
	minUsernameLength = 3

	// avatarURLTemplate derives a deterministic avatar from the username.
	avatarURLTemplate = "https://api.dicebear.com/7.x/avataaars/svg?seed=%s.svg"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the registration input, checks that neither the email nor the
// username is already taken (email first, each check independent), derives
// the deterministic avatar URL from the username, hashes the password with
// bcrypt, and delegates persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrMissingFields if email, username, or password is empty.
//   - ErrPasswordTooShort / ErrUsernameTooShort on length violations.
//   - store.ErrEmailAlreadyExists / store.ErrUsernameAlreadyExists on
//     duplicates.
//   - A wrapped storage error if any repository call fails unexpectedly.
func (a *authService) Register(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Username == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Str("username", user.Username).Msg("invalid registration data provided")
		return models.User{}, ErrMissingFields
	}

	if len(user.Password) < minPasswordLength {
		return models.User{}, ErrPasswordTooShort
	}

	if len(user.Username) < minUsernameLength {
		return models.User{}, ErrUsernameTooShort
	}

	// duplicate checks, email first
	if _, err := a.userRepository.FindUserByEmail(ctx, user.Email); err == nil {
		return models.User{}, store.ErrEmailAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("email uniqueness check failed")
		return models.User{}, fmt.Errorf("email uniqueness check failed: %w", err)
	}

	if _, err := a.userRepository.FindUserByUsername(ctx, user.Username); err == nil {
		return models.User{}, store.ErrUsernameAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Msg("username uniqueness check failed")
		return models.User{}, fmt.Errorf("username uniqueness check failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.Password = ""
	user.PasswordHash = passwordHash
	user.ProfileImage = fmt.Sprintf(avatarURLTemplate, user.Username)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both Email and Password are non-empty, looks up the
// account by email, and verifies the password against the stored bcrypt
// digest.
//
// Returns the authenticated user record or:
//   - ErrMissingFields if Email or Password is empty.
//   - ErrInvalidCredentials if the email is unknown OR the password is wrong.
//     Both paths produce the same error so callers cannot tell which
//     check failed.
//   - A wrapped storage error if the repository lookup fails unexpectedly.
func (a *authService) Login(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Password == "" {
		log.Error().Str("email", user.Email).Msg("invalid login data provided")
		return models.User{}, ErrMissingFields
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, user.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("email", user.Email).Msg("login attempt for unknown email")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !utils.CheckPassword(user.Password, foundUser.PasswordHash) {
		log.Debug().Int64("id", foundUser.UserID).Msg("login attempt with wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
