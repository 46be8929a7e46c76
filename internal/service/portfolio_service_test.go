package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
)

type mockPortfolioRepo struct {
	mock.Mock
}

func (m *mockPortfolioRepo) Create(ctx context.Context, p *models.Portfolio) error {
	args := m.Called(ctx, p)
	if args.Error(0) == nil {
		p.ID = uuid.New()
	}
	return args.Error(0)
}

func (m *mockPortfolioRepo) Update(ctx context.Context, p *models.Portfolio) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPortfolioRepo) GetByUserID(ctx context.Context, userID string) (*models.Portfolio, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Portfolio), args.Error(1)
}

func (m *mockPortfolioRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Portfolio, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Portfolio), args.Error(1)
}

func (m *mockPortfolioRepo) DeleteByUserID(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockReviewReader struct {
	mock.Mock
}

func (m *mockReviewReader) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Review, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]models.Review), args.Error(1)
}

func newPortfolioService() (*PortfolioService, *mockPortfolioRepo, *mockReviewReader) {
	repo := new(mockPortfolioRepo)
	reviews := new(mockReviewReader)
	return NewPortfolioService(repo, reviews), repo, reviews
}

func TestPortfolioService_CreateOrUpdate_CreatesWithDefaults(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	repo.On("GetByUserID", ctx, "uid-1").Return(nil, repository.ErrPortfolioNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*models.Portfolio")).Return(nil)

	p, created, err := svc.CreateOrUpdate(ctx, "uid-1", PortfolioInput{About: "обо мне"})

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, models.ThemeLight, p.Theme)
	assert.Equal(t, "обо мне", p.About)
	assert.Empty(t, p.Skills)
	assert.Empty(t, p.FriendsReviews)
}

func TestPortfolioService_CreateOrUpdate_EmptyStringKeepsStored(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	existing := models.NewDefaultPortfolio("uid-1")
	existing.ID = uuid.New()
	existing.About = "сохранённый текст"
	existing.Theme = models.ThemeDark

	repo.On("GetByUserID", ctx, "uid-1").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	p, created, err := svc.CreateOrUpdate(ctx, "uid-1", PortfolioInput{About: "", Theme: ""})

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "сохранённый текст", p.About)
	assert.Equal(t, models.ThemeDark, p.Theme)
}

func TestPortfolioService_CreateOrUpdate_EmptySliceOverwrites(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	existing := models.NewDefaultPortfolio("uid-1")
	existing.ID = uuid.New()
	existing.Skills = models.SkillList{{Name: "Go", Level: 90}}

	repo.On("GetByUserID", ctx, "uid-1").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	p, _, err := svc.CreateOrUpdate(ctx, "uid-1", PortfolioInput{Skills: []models.Skill{}})

	assert.NoError(t, err)
	assert.Empty(t, p.Skills)
}

func TestPortfolioService_CreateOrUpdate_NilSliceKeepsStored(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	existing := models.NewDefaultPortfolio("uid-1")
	existing.ID = uuid.New()
	existing.Skills = models.SkillList{{Name: "Go", Level: 90}}

	repo.On("GetByUserID", ctx, "uid-1").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	p, _, err := svc.CreateOrUpdate(ctx, "uid-1", PortfolioInput{})

	assert.NoError(t, err)
	assert.Len(t, p.Skills, 1)
}

func TestPortfolioService_AddSkill_AutoCreatesPortfolio(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	repo.On("GetByUserID", ctx, "uid-1").Return(nil, repository.ErrPortfolioNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*models.Portfolio")).Return(nil)

	p, err := svc.AddSkill(ctx, "uid-1", models.Skill{Name: "Go", Level: 80})

	assert.NoError(t, err)
	assert.Equal(t, models.ThemeLight, p.Theme)
	assert.Len(t, p.Skills, 1)
	assert.Equal(t, "Go", p.Skills[0].Name)
}

func TestPortfolioService_AddSkill_AppendsToEnd(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	existing := models.NewDefaultPortfolio("uid-1")
	existing.ID = uuid.New()
	existing.Skills = models.SkillList{{Name: "Go", Level: 90}}

	repo.On("GetByUserID", ctx, "uid-1").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	p, err := svc.AddSkill(ctx, "uid-1", models.Skill{Name: "SQL", Level: 70})

	assert.NoError(t, err)
	assert.Len(t, p.Skills, 2)
	assert.Equal(t, "SQL", p.Skills[1].Name)
}

func TestPortfolioService_AddProject_AppliesDefaults(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	repo.On("GetByUserID", ctx, "uid-1").Return(nil, repository.ErrPortfolioNotFound)
	repo.On("Create", ctx, mock.AnythingOfType("*models.Portfolio")).Return(nil)

	p, err := svc.AddProject(ctx, "uid-1", models.Project{Title: "Блог"})

	assert.NoError(t, err)
	assert.Len(t, p.Projects, 1)
	assert.Equal(t, "web", p.Projects[0].Category)
	assert.NotNil(t, p.Projects[0].Technologies)
}

func TestPortfolioService_UpdateSkill_InvalidIndex(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	existing := models.NewDefaultPortfolio("uid-1")
	existing.ID = uuid.New()
	existing.Skills = models.SkillList{{Name: "Go", Level: 90}}

	repo.On("GetByUserID", ctx, "uid-1").Return(existing, nil)

	_, err := svc.UpdateSkill(ctx, "uid-1", 1, models.Skill{Name: "SQL"})
	assert.ErrorIs(t, err, apperror.ErrInvalidIndex)

	_, err = svc.UpdateSkill(ctx, "uid-1", -1, models.Skill{Name: "SQL"})
	assert.ErrorIs(t, err, apperror.ErrInvalidIndex)
}

func TestPortfolioService_UpdateSkill_MissingPortfolio(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	repo.On("GetByUserID", ctx, "uid-1").Return(nil, repository.ErrPortfolioNotFound)

	_, err := svc.UpdateSkill(ctx, "uid-1", 0, models.Skill{Name: "SQL"})
	assert.ErrorIs(t, err, apperror.ErrPortfolioNotFound)
}

func TestPortfolioService_DeleteSkill_ShiftsIndices(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	existing := models.NewDefaultPortfolio("uid-1")
	existing.ID = uuid.New()
	existing.Skills = models.SkillList{
		{Name: "Go", Level: 90},
		{Name: "SQL", Level: 70},
		{Name: "Docker", Level: 60},
	}

	repo.On("GetByUserID", ctx, "uid-1").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	p, err := svc.DeleteSkill(ctx, "uid-1", 1)

	assert.NoError(t, err)
	assert.Len(t, p.Skills, 2)
	assert.Equal(t, "Go", p.Skills[0].Name)
	assert.Equal(t, "Docker", p.Skills[1].Name)
}

func TestPortfolioService_UpdateTheme_StoresValueAsGiven(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	existing := models.NewDefaultPortfolio("uid-1")
	existing.ID = uuid.New()

	repo.On("GetByUserID", ctx, "uid-1").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	p, err := svc.UpdateTheme(ctx, "uid-1", "solarized")

	assert.NoError(t, err)
	assert.Equal(t, "solarized", p.Theme)
}

func TestPortfolioService_UpdateContactInfo_EmptyStringOverwrites(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	existing := models.NewDefaultPortfolio("uid-1")
	existing.ID = uuid.New()
	existing.Contact = models.Contact{Email: "old@example.com", Phone: "+7 900 000 00 00"}

	repo.On("GetByUserID", ctx, "uid-1").Return(existing, nil)
	repo.On("Update", ctx, existing).Return(nil)

	empty := ""
	newEmail := "new@example.com"
	p, err := svc.UpdateContactInfo(ctx, "uid-1", ContactInput{Email: &newEmail, Phone: &empty})

	assert.NoError(t, err)
	assert.Equal(t, "new@example.com", p.Contact.Email)
	assert.Equal(t, "", p.Contact.Phone)
}

func TestPortfolioService_Fetch_ResolvesReviewRefsInOrder(t *testing.T) {
	svc, repo, reviews := newPortfolioService()
	ctx := context.Background()

	first := uuid.New()
	second := uuid.New()
	missing := uuid.New()

	existing := models.NewDefaultPortfolio("uid-1")
	existing.ID = uuid.New()
	existing.FriendsReviews = []uuid.UUID{second, missing, first}

	repo.On("GetByUserID", ctx, "uid-1").Return(existing, nil)
	// Хранилище возвращает найденные отзывы в произвольном порядке
	reviews.On("ListByIDs", ctx, existing.FriendsReviews).Return([]models.Review{
		{ID: first, ReviewerName: "Анна"},
		{ID: second, ReviewerName: "Борис"},
	}, nil)

	_, resolved, err := svc.Fetch(ctx, "uid-1")

	assert.NoError(t, err)
	assert.Len(t, resolved, 2)
	assert.Equal(t, "Борис", resolved[0].ReviewerName)
	assert.Equal(t, "Анна", resolved[1].ReviewerName)
}

func TestPortfolioService_Fetch_NotFound(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	repo.On("GetByUserID", ctx, "uid-1").Return(nil, repository.ErrPortfolioNotFound)

	_, _, err := svc.Fetch(ctx, "uid-1")
	assert.ErrorIs(t, err, apperror.ErrPortfolioNotFound)
}

func TestPortfolioService_Delete_NotFound(t *testing.T) {
	svc, repo, _ := newPortfolioService()
	ctx := context.Background()

	repo.On("DeleteByUserID", ctx, "uid-1").Return(repository.ErrPortfolioNotFound)

	err := svc.Delete(ctx, "uid-1")
	assert.ErrorIs(t, err, apperror.ErrPortfolioNotFound)
}
