package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Credentials — содержимое файла учётных данных провайдера.
type Credentials struct {
	Secret string `json:"secret"`
	Issuer string `json:"issuer"`
}

// LoadCredentials читает файл учётных данных провайдера.
func LoadCredentials(path string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("identity: не удалось прочитать файл учётных данных: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return nil, fmt.Errorf("identity: не удалось разобрать файл учётных данных: %w", err)
	}

	if strings.TrimSpace(creds.Secret) == "" {
		return nil, fmt.Errorf("identity: в файле учётных данных отсутствует secret")
	}

	return &creds, nil
}

// DevCredentials возвращает учётные данные для development окружения.
func DevCredentials() *Credentials {
	return &Credentials{
		Secret: "dev-identity-secret-change-in-production",
		Issuer: "portfolio-backend-dev",
	}
}

// TokenService — локальная реализация Provider: HS256 токены и bcrypt
// хеши паролей в собственном хранилище учётных записей.
type TokenService struct {
	store  AccountStore
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenService создаёт провайдера с заданными учётными данными.
func NewTokenService(store AccountStore, creds *Credentials, ttl time.Duration) *TokenService {
	return &TokenService{
		store:  store,
		secret: []byte(creds.Secret),
		issuer: creds.Issuer,
		ttl:    ttl,
	}
}

// CreateUser регистрирует учётную запись и выдаёт стабильный uid.
func (s *TokenService) CreateUser(ctx context.Context, email, password, displayName string) (*Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if _, err := s.store.GetAccountByEmail(ctx, email); err == nil {
		return nil, ErrEmailExists
	} else if !errors.Is(err, ErrAccountNotFound) {
		return nil, err
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("identity: не удалось захешировать пароль: %w", err)
	}

	account := &Account{
		UID:          uuid.NewString(),
		Email:        email,
		PasswordHash: string(passHash),
		DisplayName:  displayName,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	return &Identity{UID: account.UID, Email: account.Email}, nil
}

// Login проверяет пароль и выпускает bearer токен.
func (s *TokenService) Login(ctx context.Context, email, password string) (*Identity, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := s.store.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(account)
	if err != nil {
		return nil, "", err
	}

	return &Identity{UID: account.UID, Email: account.Email}, token, nil
}

// VerifyToken валидирует токен и возвращает личность вызывающего.
func (s *TokenService) VerifyToken(ctx context.Context, raw string) (*Identity, error) {
	parsed, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &Identity{UID: sub, Email: email}, nil
}

// issueToken формирует подписанный токен для учётной записи.
func (s *TokenService) issueToken(account *Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   account.UID,
		"email": account.Email,
		"iss":   s.issuer,
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("identity: не удалось подписать токен: %w", err)
	}
	return signed, nil
}
