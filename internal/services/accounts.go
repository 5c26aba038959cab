package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/snaptext/snaptext-backend/internal/models"
	"github.com/snaptext/snaptext-backend/internal/store"
	"github.com/snaptext/snaptext-backend/pkg/utils"
)

// AccountStore is what the account orchestrator needs from persistence.
// Create must enforce the email/username uniqueness invariants atomically.
type AccountStore interface {
	Create(ctx context.Context, account *models.Account) error
	GetByEmail(ctx context.Context, email string) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error)
}

// AccountService handles sign-up, login and token verification.
type AccountService struct {
	store    AccountStore
	secret   []byte
	tokenTTL time.Duration
}

func NewAccountService(store AccountStore, secret []byte, tokenTTL time.Duration) *AccountService {
	return &AccountService{store: store, secret: secret, tokenTTL: tokenTTL}
}

// SignUp creates an account and issues a bearer token for it. The email
// conflict is checked before the username conflict. The lookups give
// deterministic error ordering; the store's unique constraints close the
// remaining race window, so a concurrent duplicate still surfaces as the
// same typed conflict.
func (s *AccountService) SignUp(ctx context.Context, username, email, password string) (string, error) {
	if username == "" || email == "" || password == "" {
		return "", ErrMissingSignupFields
	}

	if _, err := s.store.GetByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("lookup email: %w", err)
	}
	if _, err := s.store.GetByUsername(ctx, username); err == nil {
		return "", ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", fmt.Errorf("lookup username: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.store.Create(ctx, account); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicateEmail):
			return "", ErrEmailTaken
		case errors.Is(err, store.ErrDuplicateUsername):
			return "", ErrUsernameTaken
		}
		return "", fmt.Errorf("create account: %w", err)
	}

	return utils.GenerateToken(account.ID.String(), s.secret, s.tokenTTL)
}

// LogIn verifies credentials and issues a fresh token. A missing account and
// a wrong password produce the same error, so the response does not reveal
// which emails are registered.
func (s *AccountService) LogIn(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	account, err := s.store.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup email: %w", err)
	}

	if !utils.VerifyPassword(password, account.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return utils.GenerateToken(account.ID.String(), s.secret, s.tokenTTL)
}

// VerifyToken validates a bearer token and confirms the account still
// exists. The two checks are independent: a token that verifies fine still
// fails with ErrAccountNotFound when the account is gone.
func (s *AccountService) VerifyToken(ctx context.Context, token string) (string, error) {
	accountID, err := utils.ParseToken(token, s.secret)
	if err != nil {
		return "", ErrInvalidToken
	}

	id, err := uuid.Parse(accountID)
	if err != nil {
		return "", ErrInvalidToken
	}

	if _, err := s.store.GetByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrAccountNotFound
		}
		return "", fmt.Errorf("lookup account: %w", err)
	}

	return accountID, nil
}
