package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mabrur-erp/mabrur-erp/internal/platform/httpx"
)

type Service struct {
	repo   Repository
	tokens *TokenStore
}

func NewService(repo Repository, tokens *TokenStore) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Login verifies the credentials and issues a bearer token. Unknown
// users, bad passwords and disabled accounts all fail the same way so
// the response does not leak which one it was.
func (s *Service) Login(ctx context.Context, input LoginInput) (LoginResponse, error) {
	user, err := s.repo.GetByUsername(ctx, input.Username)
	if err != nil {
		return LoginResponse{}, fmt.Errorf("invalid credentials: %w", httpx.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return LoginResponse{}, fmt.Errorf("invalid credentials: %w", httpx.ErrUnauthorized)
	}
	if !user.IsActive {
		return LoginResponse{}, fmt.Errorf("invalid credentials: %w", httpx.ErrUnauthorized)
	}
	token, err := s.tokens.Issue(ctx, Session{UserID: user.ID, Username: user.Username, Role: user.Role})
	if err != nil {
		return LoginResponse{}, err
	}
	return LoginResponse{Token: token, User: user}, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}

// ListUsers returns every operator account. Password hashes stay out of
// the JSON payload via the model's field tag.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}
	return s.repo.Create(ctx, User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
		IsActive:     true,
	})
}
