package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// fakeUserRepo хранит пользователей по uid.
type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	f.users[user.UID] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	u, ok := f.users[uid]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.users[user.UID] = user
	return nil
}

func TestAuthHandler_UpdateProfile_OtherUIDInToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeUserRepo{users: map[string]*models.User{
		"uid-owner": {
			ID:        uuid.New(),
			UID:       "uid-owner",
			Email:     "owner@example.com",
			Name:      "Владелец",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}}
	handler := NewAuthHandler(service.NewAuthService(repo, nil))

	r := gin.New()
	r.PUT("/auth/profile/:uid", func(c *gin.Context) {
		c.Set(middleware.ContextUIDKey, "uid-other")
	}, handler.UpdateProfile)

	req, _ := http.NewRequest("PUT", "/auth/profile/uid-owner", strings.NewReader(`{"name": "Новое имя"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "профиль успешно обновлён")
	assert.Equal(t, "Новое имя", repo.users["uid-owner"].Name)
}

func TestAuthHandler_UpdateProfile_UnknownUID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := &fakeUserRepo{users: map[string]*models.User{}}
	handler := NewAuthHandler(service.NewAuthService(repo, nil))

	r := gin.New()
	r.PUT("/auth/profile/:uid", handler.UpdateProfile)

	req, _ := http.NewRequest("PUT", "/auth/profile/uid-missing", strings.NewReader(`{"name": "Имя"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
