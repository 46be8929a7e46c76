package identity

import (
	"context"
	"errors"
)

// Ошибки identity-провайдера.
var (
	ErrAccountNotFound    = errors.New("identity: учётная запись не найдена")
	ErrEmailExists        = errors.New("identity: email уже зарегистрирован")
	ErrInvalidCredentials = errors.New("identity: неверный email или пароль")
	ErrInvalidToken       = errors.New("identity: токен невалиден или истёк")
)

// Identity — проверенная личность вызывающего: стабильный uid и email.
type Identity struct {
	UID   string
	Email string
}

// Account — учётная запись, которой владеет identity-провайдер.
// Остальной код приложения с ней не работает напрямую.
type Account struct {
	UID          string `db:"uid"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	DisplayName  string `db:"display_name"`
}

// AccountStore описывает хранилище учётных записей провайдера.
type AccountStore interface {
	CreateAccount(ctx context.Context, account *Account) error
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
}

// Provider — граница внешнего identity-провайдера. Оригинальная система
// делегирует эти операции управляемому сервису; приложение зависит только
// от интерфейса и никогда не заглядывает внутрь.
type Provider interface {
	// CreateUser регистрирует учётную запись и возвращает выданный uid.
	CreateUser(ctx context.Context, email, password, displayName string) (*Identity, error)
	// Login проверяет пароль и выпускает bearer токен.
	Login(ctx context.Context, email, password string) (*Identity, string, error)
	// VerifyToken валидирует bearer токен и возвращает личность вызывающего.
	VerifyToken(ctx context.Context, raw string) (*Identity, error)
}
