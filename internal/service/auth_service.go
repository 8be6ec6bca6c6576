package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vruksha/storefront/internal/cache"
	"github.com/vruksha/storefront/internal/config"
	"github.com/vruksha/storefront/internal/constants"
	"github.com/vruksha/storefront/internal/logger"
	"github.com/vruksha/storefront/internal/models"
	"github.com/vruksha/storefront/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserClaims JWT payload for customer sessions. TokenVersion lets logout
// revoke every token issued before the bump.
type UserClaims struct {
	UserID       uint   `json:"uid"`
	Email        string `json:"email"`
	TokenVersion uint64 `json:"tv"`
	jwt.RegisteredClaims
}

// RegisterInput new-account payload
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// LoginInput credential payload
type LoginInput struct {
	Email    string
	Password string
}

// AuthResult issued session
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
}

// AuthService account registration, login, and session revocation
type AuthService struct {
	users    repository.UserRepository
	jwtCfg   config.JWTConfig
	security config.SecurityConfig
}

// NewAuthService creates the auth service.
func NewAuthService(users repository.UserRepository, jwtCfg config.JWTConfig, security config.SecurityConfig) *AuthService {
	return &AuthService{users: users, jwtCfg: jwtCfg, security: security}
}

// Register creates an account and issues a session token.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidInput
	}
	if err := checkPasswordPolicy(input.Password, s.security.PasswordPolicy); err != nil {
		return nil, err
	}

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(input.Phone),
		PasswordHash: string(hash),
		Status:       constants.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Infow("user_registered", "user_id", user.ID)
	return s.issueToken(user)
}

// Login verifies credentials and issues a session token.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.Status != constants.UserStatusActive {
		return nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		logger.Warnw("touch_last_login_failed", "user_id", user.ID, "error", err)
	}
	user.LastLoginAt = &now

	return s.issueToken(user)
}

// Logout revokes every token the user holds by bumping the token version
// and moving the revocation cutoff.
func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	if err := s.users.BumpTokenVersion(ctx, userID, time.Now()); err != nil {
		return err
	}
	if err := cache.DelUserAuthState(ctx, userID); err != nil {
		logger.Warnw("auth_state_evict_failed", "user_id", userID, "error", err)
	}
	logger.Infow("user_logged_out", "user_id", userID)
	return nil
}

// ParseToken validates a token signature and expiry and returns its claims.
func (s *AuthService) ParseToken(tokenString string) (*UserClaims, error) {
	claims := &UserClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.jwtCfg.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}

// VerifyClaims checks the claims against the user's current revocation
// state, consulting the cache before the database.
func (s *AuthService) VerifyClaims(ctx context.Context, claims *UserClaims) error {
	state, hit, err := cache.GetUserAuthState(ctx, claims.UserID)
	if err != nil {
		logger.Warnw("auth_state_read_failed", "user_id", claims.UserID, "error", err)
	}
	if !hit {
		user, err := s.users.GetByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrInvalidCredentials
			}
			return err
		}
		state = cache.BuildUserAuthState(user)
		if err := cache.SetUserAuthState(ctx, state); err != nil {
			logger.Warnw("auth_state_write_failed", "user_id", claims.UserID, "error", err)
		}
	}

	if state.Status != constants.UserStatusActive {
		return ErrAccountDisabled
	}
	if claims.TokenVersion < state.TokenVersion {
		return ErrInvalidCredentials
	}
	if state.TokenInvalidBefore > 0 && claims.IssuedAt != nil &&
		claims.IssuedAt.Unix() < state.TokenInvalidBefore {
		return ErrInvalidCredentials
	}
	return nil
}

// CurrentUser loads the authenticated user's profile.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) issueToken(user *models.User) (*AuthResult, error) {
	expireHours := s.jwtCfg.ExpireHours
	if expireHours <= 0 {
		expireHours = 72
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireHours) * time.Hour)

	claims := UserClaims{
		UserID:       user.ID,
		Email:        user.Email,
		TokenVersion: user.TokenVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtCfg.SecretKey))
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: signed, ExpiresAt: expiresAt, User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
