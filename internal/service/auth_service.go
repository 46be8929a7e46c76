package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ignatzorin/portfolio-backend/internal/identity"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// UserRepositoryForAuth описывает зависимости AuthService от слоя хранилища.
type UserRepositoryForAuth interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByUID(ctx context.Context, uid string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
}

// RegisterInput содержит данные пользователя при регистрации.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// ProfileUpdateInput содержит частичное обновление профиля:
// устанавливаются только переданные непустые поля.
type ProfileUpdateInput struct {
	Name           string
	ProfilePicture string
	SocialLinks    *models.SocialLinks
}

// AuthService инкапсулирует регистрацию, вход и обновление профиля.
// Учётными данными владеет внешний identity-провайдер; сервис хранит
// только профильную запись пользователя.
type AuthService struct {
	repo     UserRepositoryForAuth
	provider identity.Provider
}

// NewAuthService создаёт сервис аутентификации.
func NewAuthService(repo UserRepositoryForAuth, provider identity.Provider) *AuthService {
	return &AuthService{repo: repo, provider: provider}
}

// Register создаёт учётную запись у провайдера и профильную запись пользователя.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, apperror.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	ident, err := s.provider.CreateUser(ctx, email, in.Password, in.Name)
	if err != nil {
		if errors.Is(err, identity.ErrEmailExists) {
			return nil, apperror.ErrEmailTaken
		}
		return nil, fmt.Errorf("auth service: создание учётной записи: %w", err)
	}

	user := &models.User{
		UID:   ident.UID,
		Email: email,
		Name:  in.Name,
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login проверяет учётные данные у провайдера и возвращает bearer токен.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := validation.ValidateEmail(email); err != nil {
		return nil, "", apperror.Wrap(err, apperror.ErrCodeValidation, err.Error())
	}

	ident, token, err := s.provider.Login(ctx, strings.ToLower(strings.TrimSpace(email)), password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			return nil, "", apperror.New(apperror.ErrCodeUnauthorized, "неверный email или пароль")
		}
		return nil, "", fmt.Errorf("auth service: вход: %w", err)
	}

	user, err := s.repo.GetByUID(ctx, ident.UID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, "", apperror.ErrUserNotFound
		}
		return nil, "", err
	}

	return user, token, nil
}

// UpdateProfile устанавливает переданные поля профиля существующего пользователя.
func (s *AuthService) UpdateProfile(ctx context.Context, uid string, in ProfileUpdateInput) (*models.User, error) {
	user, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.ProfilePicture != "" {
		picture := in.ProfilePicture
		user.ProfilePicture = &picture
	}
	if in.SocialLinks != nil {
		user.SocialLinks = in.SocialLinks
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, apperror.ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}
