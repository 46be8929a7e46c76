package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// fakePortfolioRepo хранит единственное портфолио в памяти.
type fakePortfolioRepo struct {
	stored *models.Portfolio
}

func (f *fakePortfolioRepo) Create(ctx context.Context, p *models.Portfolio) error {
	p.ID = uuid.New()
	f.stored = p
	return nil
}

func (f *fakePortfolioRepo) Update(ctx context.Context, p *models.Portfolio) error {
	f.stored = p
	return nil
}

func (f *fakePortfolioRepo) GetByUserID(ctx context.Context, userID string) (*models.Portfolio, error) {
	if f.stored == nil {
		return nil, repository.ErrPortfolioNotFound
	}
	return f.stored, nil
}

func (f *fakePortfolioRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Portfolio, error) {
	if f.stored == nil {
		return nil, repository.ErrPortfolioNotFound
	}
	return f.stored, nil
}

func (f *fakePortfolioRepo) DeleteByUserID(ctx context.Context, userID string) error {
	f.stored = nil
	return nil
}

func TestPortfolioHandler_AddSkill_LevelOutOfRange(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &PortfolioHandler{}
	r.POST("/portfolio/:userId/skills", handler.AddSkill)

	req, _ := http.NewRequest("POST", "/portfolio/uid-1/skills", strings.NewReader(`{"name": "Go", "level": 150}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioHandler_AddSkill_RespondsOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	portfolios := service.NewPortfolioService(&fakePortfolioRepo{}, nil)
	handler := NewPortfolioHandler(portfolios, nil)
	r.POST("/portfolio/:userId/skills", handler.AddSkill)

	req, _ := http.NewRequest("POST", "/portfolio/uid-1/skills", strings.NewReader(`{"name": "Go", "level": 80}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "навык добавлен")
}

func TestPortfolioHandler_UpdateSkill_NonNumericIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &PortfolioHandler{}
	r.PUT("/portfolio/:userId/skills/:skillIndex", handler.UpdateSkill)

	req, _ := http.NewRequest("PUT", "/portfolio/uid-1/skills/abc", strings.NewReader(`{"name": "Go", "level": 50}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioHandler_DeleteProject_NonNumericIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &PortfolioHandler{}
	r.DELETE("/portfolio/:userId/projects/:projectIndex", handler.DeleteProject)

	req, _ := http.NewRequest("DELETE", "/portfolio/uid-1/projects/first", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioHandler_AddProject_MissingTitle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &PortfolioHandler{}
	r.POST("/portfolio/:userId/projects", handler.AddProject)

	req, _ := http.NewRequest("POST", "/portfolio/uid-1/projects", strings.NewReader(`{"description": "без названия"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioHandler_AddProject_InvalidRepoLink(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &PortfolioHandler{}
	r.POST("/portfolio/:userId/projects", handler.AddProject)

	req, _ := http.NewRequest("POST", "/portfolio/uid-1/projects", strings.NewReader(`{"title": "Блог", "repoLink": "ftp://example.com/repo"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioHandler_ContactForm_InvalidEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &PortfolioHandler{}
	r.POST("/portfolio/:userId/contact", handler.ContactForm)

	req, _ := http.NewRequest("POST", "/portfolio/uid-1/contact", strings.NewReader(`{"name": "Анна", "email": "не-email", "message": "привет"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioHandler_ContactForm_Success(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &PortfolioHandler{}
	r.POST("/portfolio/:userId/contact", handler.ContactForm)

	req, _ := http.NewRequest("POST", "/portfolio/uid-1/contact", strings.NewReader(`{"name": "Анна", "email": "anna@example.com", "subject": "Сотрудничество", "message": "Привет, отличное портфолио!"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "сообщение отправлено")
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestPortfolioHandler_ContactForm_BlankName(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &PortfolioHandler{}
	r.POST("/portfolio/:userId/contact", handler.ContactForm)

	req, _ := http.NewRequest("POST", "/portfolio/uid-1/contact", strings.NewReader(`{"name": "   ", "email": "anna@example.com", "message": "привет"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioHandler_UpdateTheme_MissingTheme(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler := &PortfolioHandler{}
	r.PATCH("/portfolio/:userId/theme", handler.UpdateTheme)

	req, _ := http.NewRequest("PATCH", "/portfolio/uid-1/theme", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
