package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/snaptext/snaptext-backend/internal/models"
)

var (
	ErrNotFound          = errors.New("account not found")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrDuplicateUsername = errors.New("username already exists")
)

// uniqueViolation is the PostgreSQL error code for UNIQUE constraint failures.
const uniqueViolation = "23505"

// AccountStore persists accounts in PostgreSQL. Uniqueness of email and
// username is enforced by the table's UNIQUE constraints, so Create is
// atomic: two concurrent inserts with the same email resolve to one success
// and one typed conflict.
type AccountStore struct {
	db *sql.DB
}

func NewAccountStore(db *sql.DB) *AccountStore {
	return &AccountStore{db: db}
}

func (s *AccountStore) Create(ctx context.Context, account *models.Account) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO accounts (id, username, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, account.ID, account.Username, account.Email, account.PasswordHash, account.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			switch pqErr.Constraint {
			case "accounts_username_key":
				return ErrDuplicateUsername
			default:
				return ErrDuplicateEmail
			}
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

func (s *AccountStore) GetByEmail(ctx context.Context, email string) (*models.Account, error) {
	return s.getByField(ctx, "email", email)
}

func (s *AccountStore) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	return s.getByField(ctx, "username", username)
}

func (s *AccountStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Account, error) {
	return s.getByField(ctx, "id", id)
}

func (s *AccountStore) getByField(ctx context.Context, field string, value interface{}) (*models.Account, error) {
	account := &models.Account{}
	query := fmt.Sprintf(`
		SELECT id, username, email, password_hash, created_at
		FROM accounts WHERE %s = $1
	`, field)

	err := s.db.QueryRowContext(ctx, query, value).Scan(
		&account.ID, &account.Username, &account.Email, &account.PasswordHash, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query account by %s: %w", field, err)
	}
	return account, nil
}
