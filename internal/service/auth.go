package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dpatel-fit/smart-health-advisor/backend/internal/models"
	"github.com/dpatel-fit/smart-health-advisor/backend/internal/types"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenRevoked       = errors.New("token has been revoked")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateUsername  = errors.New("username already taken")
)

const tokenTTL = 24 * time.Hour

// AuthService handles registration, login and token lifecycle. Revoked
// tokens live in Redis until their natural expiry; a nil Redis client
// disables revocation (logout becomes client-side only).
type AuthService struct {
	db        *gorm.DB
	redis     *redis.Client
	jwtSecret string
}

var _ IAuthService = (*AuthService)(nil)

func NewAuthService(db *gorm.DB, redisClient *redis.Client, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		redis:     redisClient,
		jwtSecret: jwtSecret,
	}
}

// Register creates the user and their health profile in one
// transaction and returns a signed token. Duplicate email or username
// is reported as a recoverable failure with a descriptive reason.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (string, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return "", ErrDuplicateEmail
	}
	var existingProfile models.UserProfile
	if err := s.db.WithContext(ctx).Where("username = ?", req.Username).First(&existingProfile).Error; err == nil {
		return "", ErrDuplicateUsername
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hashed),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		profile := models.UserProfile{
			UserID:            user.ID,
			Username:          req.Username,
			Age:               req.Age,
			Gender:            req.Gender,
			HeightCm:          req.HeightCm,
			WeightKg:          req.WeightKg,
			ActivityLevel:     req.ActivityLevel,
			DietPreference:    req.DietPreference,
			MedicalConditions: req.MedicalConditions,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	return s.GenerateToken(user.ID, req.Username)
}

// Login verifies credentials and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return "", fmt.Errorf("failed to load profile: %w", err)
	}

	return s.GenerateToken(user.ID, profile.Username)
}

// GenerateToken signs an HS256 token for the user.
func (s *AuthService) GenerateToken(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := types.TokenClaims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

// ValidateToken parses and verifies a token, rejecting revoked ones.
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if s.redis != nil && claims.ID != "" {
		revoked, err := s.redis.Exists(context.Background(), revocationKey(claims.ID)).Result()
		if err == nil && revoked > 0 {
			return nil, ErrTokenRevoked
		}
	}

	return claims, nil
}

// Logout revokes the token for the remainder of its lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	if s.redis == nil {
		// No revocation store configured; the client discards the token.
		return nil
	}
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return err
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, revocationKey(claims.ID), "revoked", ttl).Err()
}

func revocationKey(jti string) string {
	return "auth:revoked:" + jti
}
