package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/models"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/repository"
)

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token string            `json:"token"`
	User  models.UserPublic `json:"user"`
}

// LockoutConfig controls the failed-login throttle.
type LockoutConfig struct {
	MaxAttempts int
	Window      time.Duration
}

// AuthService registers users, verifies credentials and issues session
// tokens.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.UserPublic, error)
	Login(ctx context.Context, email, password string) (*LoginResponse, error)
	VerifyToken(token string) (int64, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
	redis      *redis.Client
	bcryptCost int
	lockout    LockoutConfig
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, redisClient *redis.Client, bcryptCost int, lockout LockoutConfig) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		redis:      redisClient,
		bcryptCost: bcryptCost,
		lockout:    lockout,
	}
}

// Register stores a new user with a bcrypt hash of the password. The
// unique email index is the single source of truth for duplicates; there
// is no racy existence check beforehand.
func (s *authService) Register(ctx context.Context, name, email, password string) (*models.UserPublic, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	public := user.Public()
	return &public, nil
}

// Login verifies the credentials and issues a session token. Unknown
// email and wrong password return the same error so the response never
// reveals whether an email is registered.
func (s *authService) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	locked, err := s.isLockedOut(ctx, email)
	if err != nil {
		return nil, err
	}
	if locked {
		return nil, ErrTooManyAttempts
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := s.recordFailedAttempt(ctx, email); err != nil {
				return nil, err
			}
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if err := s.recordFailedAttempt(ctx, email); err != nil {
			return nil, err
		}
		return nil, ErrInvalidCredentials
	}

	if err := s.clearFailedAttempts(ctx, email); err != nil {
		return nil, err
	}

	token, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &LoginResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// VerifyToken checks the token signature and expiry and returns the
// embedded user id. It is side-effect-free: no session state is read or
// written.
func (s *authService) VerifyToken(token string) (int64, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func lockoutKey(email string) string {
	return fmt.Sprintf("login_attempts:%s", email)
}

func (s *authService) isLockedOut(ctx context.Context, email string) (bool, error) {
	count, err := s.redis.Get(ctx, lockoutKey(email)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read lockout counter: %w", err)
	}
	return count >= s.lockout.MaxAttempts, nil
}

// recordFailedAttempt bumps the counter and slides the window, so the
// lockout lasts until the subject stays quiet for the full window.
func (s *authService) recordFailedAttempt(ctx context.Context, email string) error {
	key := lockoutKey(email)
	if err := s.redis.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	if err := s.redis.Expire(ctx, key, s.lockout.Window).Err(); err != nil {
		return fmt.Errorf("failed to expire login attempt counter: %w", err)
	}
	return nil
}

func (s *authService) clearFailedAttempts(ctx context.Context, email string) error {
	if err := s.redis.Del(ctx, lockoutKey(email)).Err(); err != nil {
		return fmt.Errorf("failed to clear login attempt counter: %w", err)
	}
	return nil
}
