package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"fitlife/internal/models"
	"fitlife/internal/store"
	"fitlife/internal/validate"
)

// AuthService handles registration and credential verification. Session
// tokens are issued at the HTTP layer; resource services only ever see the
// resolved user id.
type AuthService struct {
	store store.Store
	log   *zap.Logger
}

func NewAuthService(s store.Store, log *zap.Logger) *AuthService {
	return &AuthService{store: s, log: log}
}

func (s *AuthService) Register(ctx context.Context, in validate.RegisterInput) (*models.User, error) {
	if err := in.Validate(); err != nil {
		return nil, invalidInput(err)
	}
	email := strings.TrimSpace(strings.ToLower(in.Email))

	_, err := s.store.Users().ByEmail(ctx, email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		s.log.Error("could not look up user", zap.Error(err))
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &models.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hashed),
		Provider:     "credentials",
		Role:         "user",
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		s.log.Error("could not create user", zap.Error(err))
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	user, err := s.store.Users().ByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error("could not look up user", zap.Error(err))
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if user.PasswordHash == "" {
		// OAuth-only account; no password to compare against.
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpsertOAuthUser resolves an OAuth callback profile to a local user,
// creating one on first login. Matching is by email, so a credentials
// account and an OAuth login with the same address share one user.
func (s *AuthService) UpsertOAuthUser(ctx context.Context, provider, name, email string) (*models.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return nil, &InvalidInputError{Message: "Provider did not supply an email address"}
	}
	user, err := s.store.Users().ByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		s.log.Error("could not look up user", zap.Error(err))
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	user = &models.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Provider:  provider,
		Role:      "user",
		CreatedAt: time.Now().UTC(),
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		s.log.Error("could not create user", zap.Error(err))
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}
