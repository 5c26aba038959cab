package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snaptext/snaptext-backend/internal/models"
)

func testAccount() *models.Account {
	return &models.Account{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$fake",
		CreatedAt:    time.Now(),
	}
}

func TestAccountStoreCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	account := testAccount()
	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(account.ID, account.Username, account.Email, account.PasswordHash, account.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewAccountStore(db)
	require.NoError(t, s.Create(context.Background(), account))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountStoreCreateUniqueViolations(t *testing.T) {
	tests := []struct {
		name       string
		constraint string
		want       error
	}{
		{"duplicate email", "accounts_email_key", ErrDuplicateEmail},
		{"duplicate username", "accounts_username_key", ErrDuplicateUsername},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec("INSERT INTO accounts").
				WillReturnError(&pq.Error{Code: "23505", Constraint: tt.constraint})

			s := NewAccountStore(db)
			err = s.Create(context.Background(), testAccount())
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestAccountStoreGetByEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	account := testAccount()
	rows := sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}).
		AddRow(account.ID, account.Username, account.Email, account.PasswordHash, account.CreatedAt)
	mock.ExpectQuery("SELECT id, username, email, password_hash, created_at").
		WithArgs(account.Email).
		WillReturnRows(rows)

	s := NewAccountStore(db)
	got, err := s.GetByEmail(context.Background(), account.Email)
	require.NoError(t, err)
	assert.Equal(t, account.ID, got.ID)
	assert.Equal(t, account.Username, got.Username)
}

func TestAccountStoreGetByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, username, email, password_hash, created_at").
		WithArgs("missing@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at"}))

	s := NewAccountStore(db)
	_, err = s.GetByEmail(context.Background(), "missing@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}
