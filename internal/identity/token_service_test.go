package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// memoryStore — хранилище учётных записей в памяти для тестов.
type memoryStore struct {
	byEmail map[string]*Account
}

func newMemoryStore() *memoryStore {
	return &memoryStore{byEmail: make(map[string]*Account)}
}

func (s *memoryStore) CreateAccount(ctx context.Context, account *Account) error {
	s.byEmail[account.Email] = account
	return nil
}

func (s *memoryStore) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	account, ok := s.byEmail[email]
	if !ok {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func newTestService() *TokenService {
	return NewTokenService(newMemoryStore(), DevCredentials(), time.Hour)
}

func TestTokenService_CreateUserAndLogin(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ident, err := svc.CreateUser(ctx, "Ivan@Example.com", "secret123", "Иван")
	assert.NoError(t, err)
	assert.NotEmpty(t, ident.UID)
	assert.Equal(t, "ivan@example.com", ident.Email)

	loggedIn, token, err := svc.Login(ctx, "ivan@example.com", "secret123")
	assert.NoError(t, err)
	assert.Equal(t, ident.UID, loggedIn.UID)
	assert.NotEmpty(t, token)
}

func TestTokenService_CreateUser_DuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "ivan@example.com", "secret123", "Иван")
	assert.NoError(t, err)

	_, err = svc.CreateUser(ctx, "ivan@example.com", "другой", "Иван")
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestTokenService_Login_WrongPassword(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "ivan@example.com", "secret123", "Иван")
	assert.NoError(t, err)

	_, _, err = svc.Login(ctx, "ivan@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenService_Login_UnknownEmail(t *testing.T) {
	svc := newTestService()

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestTokenService_VerifyToken_Roundtrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	ident, err := svc.CreateUser(ctx, "ivan@example.com", "secret123", "Иван")
	assert.NoError(t, err)

	_, token, err := svc.Login(ctx, "ivan@example.com", "secret123")
	assert.NoError(t, err)

	verified, err := svc.VerifyToken(ctx, token)
	assert.NoError(t, err)
	assert.Equal(t, ident.UID, verified.UID)
	assert.Equal(t, "ivan@example.com", verified.Email)
}

func TestTokenService_VerifyToken_Garbage(t *testing.T) {
	svc := newTestService()

	_, err := svc.VerifyToken(context.Background(), "не.настоящий.токен")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VerifyToken_Expired(t *testing.T) {
	store := newMemoryStore()
	svc := NewTokenService(store, DevCredentials(), -time.Minute)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "ivan@example.com", "secret123", "Иван")
	assert.NoError(t, err)

	_, token, err := svc.Login(ctx, "ivan@example.com", "secret123")
	assert.NoError(t, err)

	_, err = svc.VerifyToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenService_VerifyToken_WrongSecret(t *testing.T) {
	store := newMemoryStore()
	issuing := NewTokenService(store, &Credentials{Secret: "secret-a", Issuer: "test"}, time.Hour)
	verifying := NewTokenService(store, &Credentials{Secret: "secret-b", Issuer: "test"}, time.Hour)
	ctx := context.Background()

	_, err := issuing.CreateUser(ctx, "ivan@example.com", "secret123", "Иван")
	assert.NoError(t, err)

	_, token, err := issuing.Login(ctx, "ivan@example.com", "secret123")
	assert.NoError(t, err)

	_, err = verifying.VerifyToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
