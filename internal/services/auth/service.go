// Package auth implements registration and login on top of bcrypt password
// hashing and JWT issuance.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"rebelsrev/internal/models"
	"rebelsrev/internal/repositories"
	"rebelsrev/internal/utils"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Service errors.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
)

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResult bundles everything the dashboard needs after authentication.
// Affiliate is populated only for affiliate users.
type LoginResult struct {
	Token     string
	User      *models.User
	Affiliate *models.Affiliate
}

// Service authenticates users and issues tokens.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*LoginResult, error)
	Login(ctx context.Context, identifier, password string) (*LoginResult, error)
	GetUserByID(ctx context.Context, id uint) (*models.User, error)
}

type service struct {
	users      repositories.UserRepository
	affiliates repositories.AffiliateRepository
}

func NewService(users repositories.UserRepository, affiliates repositories.AffiliateRepository) Service {
	if users == nil {
		panic("user repository is required")
	}
	if affiliates == nil {
		panic("affiliate repository is required")
	}
	return &service{users: users, affiliates: affiliates}
}

// Register creates the account and, for affiliate users, its affiliate
// profile with a freshly generated sub ID.
func (s *service) Register(ctx context.Context, input RegisterInput) (*LoginResult, error) {
	if input.Role == "" {
		input.Role = models.RoleAffiliate
	}
	if input.Role != models.RoleAdmin && input.Role != models.RoleAffiliate {
		return nil, fmt.Errorf("unknown role %q", input.Role)
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, input.Username, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: input.Username,
		Email:    input.Email,
		Password: string(hashed),
		Role:     input.Role,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	var profile *models.Affiliate
	if user.Role == models.RoleAffiliate {
		profile = &models.Affiliate{
			UserID:       user.ID,
			Name:         user.Username,
			Email:        user.Email,
			SubID:        newSubID(),
			Status:       models.AffiliateStatusActive,
			JoinDate:     time.Now().UTC(),
			LastActivity: time.Now().UTC(),
		}
		if err := s.affiliates.Create(ctx, profile); err != nil {
			return nil, fmt.Errorf("failed to create affiliate profile: %w", err)
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &LoginResult{Token: token, User: user, Affiliate: profile}, nil
}

// Login authenticates by username or email.
func (s *service) Login(ctx context.Context, identifier, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsernameOrEmail(ctx, identifier)
	if err != nil {
		log.Printf("login failed: no user for identifier %q", identifier)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		log.Printf("login failed: wrong password for user %d", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	result := &LoginResult{Token: token, User: user}
	if user.Role == models.RoleAffiliate {
		profile, err := s.affiliates.GetByUserID(ctx, user.ID)
		if err == nil {
			result.Affiliate = profile
		}
	}
	return result, nil
}

func (s *service) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	return s.users.GetByID(ctx, id)
}

// newSubID derives a short affiliate sub identifier from a fresh UUID.
func newSubID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "REV" + strings.ToUpper(raw[:8])
}
