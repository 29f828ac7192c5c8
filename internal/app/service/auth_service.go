package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"todo_api/internal/common"
	"todo_api/internal/common/security"
	"todo_api/internal/domain/model"
	"todo_api/internal/domain/repository"
)

type AuthService struct {
	userRepo repository.UserRepository
	tokens   *security.TokenAuth
}

func NewAuthService(userRepo repository.UserRepository, tokens *security.TokenAuth) *AuthService {
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*model.User, error) {
	if req.Email == "" || req.Password == "" || req.Name == "" {
		return nil, common.Errorf("email, password and name are required: %w", common.ErrValidation)
	}
	if !strings.Contains(req.Email, "@") {
		return nil, common.Errorf("invalid email address: %w", common.ErrValidation)
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		ID:             uuid.NewString(),
		Email:          req.Email,
		HashedPassword: hashedPassword,
		Name:           req.Name,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Repo returns common.ErrConflict on a duplicate email
		return nil, err
	}

	user.HashedPassword = "" // Clear hash before returning
	return user, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and
// wrong password both report the same ErrUnauthorized so the response does
// not reveal which field was wrong.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*TokenResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, common.Errorf("email and password are required: %w", common.ErrValidation)
	}

	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if !security.CheckPasswordHash(req.Password, user.HashedPassword) {
		return nil, common.ErrUnauthorized
	}

	token, err := s.tokens.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &TokenResponse{AccessToken: token, TokenType: "bearer"}, nil
}
