package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/identity"
)

// AccountRepository хранит учётные записи локального identity-провайдера.
type AccountRepository struct {
	db *sqlx.DB
}

// NewAccountRepository создаёт экземпляр репозитория.
func NewAccountRepository(db *sqlx.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// CreateAccount сохраняет новую учётную запись.
func (r *AccountRepository) CreateAccount(ctx context.Context, account *identity.Account) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO identity_accounts (uid, email, password_hash, display_name)
		VALUES ($1, $2, $3, $4)
	`, account.UID, account.Email, account.PasswordHash, account.DisplayName)
	if err != nil {
		return fmt.Errorf("account repository: insert %w", err)
	}
	return nil
}

// GetAccountByEmail возвращает учётную запись по email.
func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*identity.Account, error) {
	var account identity.Account
	err := r.db.GetContext(ctx, &account, `
		SELECT uid, email, password_hash, display_name
		FROM identity_accounts WHERE email = $1
	`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, identity.ErrAccountNotFound
		}
		return nil, fmt.Errorf("account repository: get by email %w", err)
	}
	return &account, nil
}
