package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/portfolio-backend/internal/identity"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	args := m.Called(ctx, uid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) CreateUser(ctx context.Context, email, password, displayName string) (*identity.Identity, error) {
	args := m.Called(ctx, email, password, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

func (m *mockProvider) Login(ctx context.Context, email, password string) (*identity.Identity, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*identity.Identity), args.String(1), args.Error(2)
}

func (m *mockProvider) VerifyToken(ctx context.Context, raw string) (*identity.Identity, error) {
	args := m.Called(ctx, raw)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Identity), args.Error(1)
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := new(mockUserRepo)
	provider := new(mockProvider)
	svc := NewAuthService(repo, provider)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ivan@example.com").Return(nil, repository.ErrUserNotFound)
	provider.On("CreateUser", ctx, "ivan@example.com", "secret123", "Иван").
		Return(&identity.Identity{UID: "uid-1", Email: "ivan@example.com"}, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil)

	user, err := svc.Register(ctx, RegisterInput{
		Email:    "Ivan@Example.com",
		Name:     "Иван",
		Password: "secret123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, "ivan@example.com", user.Email)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	provider := new(mockProvider)
	svc := NewAuthService(repo, provider)
	ctx := context.Background()

	repo.On("GetByEmail", ctx, "ivan@example.com").
		Return(&models.User{UID: "uid-1", Email: "ivan@example.com"}, nil)

	_, err := svc.Register(ctx, RegisterInput{
		Email:    "ivan@example.com",
		Name:     "Иван",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, apperror.ErrEmailTaken)
	provider.AssertNotCalled(t, "CreateUser")
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	svc := NewAuthService(new(mockUserRepo), new(mockProvider))

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "не-email",
		Name:     "Иван",
		Password: "secret123",
	})

	assert.Error(t, err)
	assert.True(t, apperror.IsBadRequest(err))
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := new(mockUserRepo)
	provider := new(mockProvider)
	svc := NewAuthService(repo, provider)
	ctx := context.Background()

	provider.On("Login", ctx, "ivan@example.com", "secret123").
		Return(&identity.Identity{UID: "uid-1", Email: "ivan@example.com"}, "token-abc", nil)
	repo.On("GetByUID", ctx, "uid-1").
		Return(&models.User{UID: "uid-1", Email: "ivan@example.com", Name: "Иван"}, nil)

	user, token, err := svc.Login(ctx, "ivan@example.com", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, "token-abc", token)
	assert.Equal(t, "Иван", user.Name)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	repo := new(mockUserRepo)
	provider := new(mockProvider)
	svc := NewAuthService(repo, provider)
	ctx := context.Background()

	provider.On("Login", ctx, "ivan@example.com", "wrong").
		Return(nil, "", identity.ErrInvalidCredentials)

	_, _, err := svc.Login(ctx, "ivan@example.com", "wrong")

	assert.Error(t, err)
	var appErr *apperror.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperror.ErrCodeUnauthorized, appErr.Code)
}

func TestAuthService_UpdateProfile_SetsProvidedFields(t *testing.T) {
	repo := new(mockUserRepo)
	provider := new(mockProvider)
	svc := NewAuthService(repo, provider)
	ctx := context.Background()

	existing := &models.User{UID: "uid-1", Name: "Иван", Email: "ivan@example.com"}
	repo.On("GetByUID", ctx, "uid-1").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	user, err := svc.UpdateProfile(ctx, "uid-1", ProfileUpdateInput{
		ProfilePicture: "/media/uid-1/avatar.png",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Иван", user.Name)
	assert.NotNil(t, user.ProfilePicture)
	assert.Equal(t, "/media/uid-1/avatar.png", *user.ProfilePicture)
}

func TestAuthService_UpdateProfile_NotFound(t *testing.T) {
	repo := new(mockUserRepo)
	provider := new(mockProvider)
	svc := NewAuthService(repo, provider)
	ctx := context.Background()

	repo.On("GetByUID", ctx, "uid-x").Return(nil, repository.ErrUserNotFound)

	_, err := svc.UpdateProfile(ctx, "uid-x", ProfileUpdateInput{Name: "Пётр"})
	assert.ErrorIs(t, err, apperror.ErrUserNotFound)
}
