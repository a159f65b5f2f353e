package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"auction_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength is the minimum accepted password length.
	minPasswordLength = 8

	// sessionTTL is how long a refresh-token session stays valid.
	sessionTTL = 7 * 24 * time.Hour
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. Returns ErrUsernameTaken when the username
	// already exists.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by username.
	// Returns ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user by ID.
	// Returns ErrUserNotFound when no such user exists.
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// JWTGenerator defines the interface for access-token generation.
type JWTGenerator interface {
	// GenerateToken creates a signed JWT token for the given user.
	GenerateToken(userID uint, username string) (string, error)
}

// ClientInfo carries request metadata stored with a session for auditing.
type ClientInfo struct {
	UserAgent string
	IPAddress string
}

// TokenPair is the result of a successful login or registration.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users    UserRepository
	sessions SessionRepository
	jwt      JWTGenerator
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, sessions SessionRepository, jwt JWTGenerator) *authUsecase {
	return &authUsecase{
		users:    users,
		sessions: sessions,
		jwt:      jwt,
	}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new account and logs it in.
// The confirmation must match the password exactly; a mismatch rejects the
// registration before any row is created. A taken username yields
// ErrUsernameTaken.
func (u *authUsecase) Register(ctx context.Context, username, email, password, confirmation string, client ClientInfo) (*TokenPair, error) {
	if password != confirmation {
		return nil, ErrPasswordMismatch
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{Username: username, Email: email, Password: string(hashed)}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return u.issueTokens(ctx, user, client)
}

// Login authenticates a user and returns a token pair on success.
// A bcrypt comparison runs even when the user does not exist, to keep
// response timing independent of username validity.
func (u *authUsecase) Login(ctx context.Context, username, password string, client ClientInfo) (*TokenPair, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// Dummy hash compared when the user is missing, so the bcrypt work
	// happens on every path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))
	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return u.issueTokens(ctx, user, client)
}

// Refresh exchanges a valid refresh token for a new access token.
func (u *authUsecase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	session, err := u.sessions.FindByID(ctx, refreshToken)
	if err != nil {
		return "", err
	}
	if session.IsRevoked() {
		return "", ErrSessionRevoked
	}
	if session.IsExpired() {
		return "", ErrSessionExpired
	}

	user, err := u.users.FindByID(ctx, session.UserID)
	if err != nil {
		return "", err
	}

	token, err := u.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Logout revokes the session behind the given refresh token.
// Returns ErrSessionNotFound when no such session exists.
func (u *authUsecase) Logout(ctx context.Context, refreshToken string) error {
	return u.sessions.Revoke(ctx, refreshToken)
}

// issueTokens creates a refresh-token session and signs an access token.
func (u *authUsecase) issueTokens(ctx context.Context, user *entity.User, client ClientInfo) (*TokenPair, error) {
	token, err := u.jwt.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	now := time.Now()
	session := &entity.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		UserAgent: client.UserAgent,
		IPAddress: client.IPAddress,
		CreatedAt: now,
		ExpiresAt: now.Add(sessionTTL),
	}
	if err := u.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &TokenPair{AccessToken: token, RefreshToken: session.ID}, nil
}
