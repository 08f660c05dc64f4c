package services

import (
	"context"
	"fmt"

	"slingshot/auth"
	"slingshot/domain"
	"slingshot/errors"
	"slingshot/repositories"

	"github.com/google/uuid"
)

type IAuthService interface {
	Register(ctx context.Context, email, password string) (Token, error)
	Login(ctx context.Context, email, password string) (Token, error)
	GetUser(ctx context.Context, id string) (domain.User, error)
}

type AuthService struct {
	users  repositories.IUserRepository
	tokens *auth.TokenManager
}

type Token string

func NewAuthService(users repositories.IUserRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

func (s *AuthService) Register(ctx context.Context, email, password string) (Token, error) {
	valReq := auth.RegisterRequest{
		Email:    email,
		Password: password,
	}

	// Business rules first (email format, password complexity), before any
	// expensive cryptographic work.
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	// Hashing happens here so the repository never sees plain passwords.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: hashedPassword,
		Roles:        []string{"user"},
	})
	if err != nil {
		return "", err // propagates ErrUserAlreadyExists when the email is taken
	}

	token, err := s.tokens.Generate(user.ID, user.Roles)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (Token, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Generic error to prevent user enumeration.
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Roles)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}
	return Token(token), nil
}

func (s *AuthService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.users.Get(ctx, id)
}
