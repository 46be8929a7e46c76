package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
)

// PortfolioRepository описывает взаимодействие сервиса с хранилищем портфолио.
type PortfolioRepository interface {
	Create(ctx context.Context, p *models.Portfolio) error
	Update(ctx context.Context, p *models.Portfolio) error
	GetByUserID(ctx context.Context, userID string) (*models.Portfolio, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Portfolio, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

// ReviewReaderForPortfolio читает отзывы для раскрытия ссылок friendsReviews.
type ReviewReaderForPortfolio interface {
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Review, error)
}

// PortfolioInput — частичный набор полей для create-or-update.
// nil-срез или nil-контакт означает "поле не передано".
type PortfolioInput struct {
	Theme      string
	About      string
	Skills     []models.Skill
	Projects   []models.Project
	Experience []models.Experience
	Contact    *models.Contact
}

// ContactInput — частичное обновление контактов: каждый переданный ключ
// перезаписывает сохранённый, включая перезапись пустой строкой.
type ContactInput struct {
	Email    *string
	Phone    *string
	Location *string
	GitHub   *string
	LinkedIn *string
	Twitter  *string
	Website  *string
}

// PortfolioService реализует протокол обновления агрегата портфолио.
type PortfolioService struct {
	repo    PortfolioRepository
	reviews ReviewReaderForPortfolio
}

// NewPortfolioService создаёт сервис портфолио.
func NewPortfolioService(repo PortfolioRepository, reviews ReviewReaderForPortfolio) *PortfolioService {
	return &PortfolioService{repo: repo, reviews: reviews}
}

// Fetch возвращает портфолио владельца с раскрытыми отзывами.
func (s *PortfolioService) Fetch(ctx context.Context, userID string) (*models.Portfolio, []models.Review, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, nil, translatePortfolioErr(err)
	}

	reviews, err := s.resolveReviews(ctx, p.FriendsReviews)
	if err != nil {
		return nil, nil, err
	}

	return p, reviews, nil
}

// CreateOrUpdate создаёт портфолио с дефолтами либо обновляет существующее.
// Возвращённый флаг true означает "создано" (для кода ответа 201).
//
// Обновление использует truthy-merge: пустая строка не затирает сохранённое
// значение, nil-срез и nil-контакт трактуются как "не передано". Очистить
// поле через эту операцию нельзя.
func (s *PortfolioService) CreateOrUpdate(ctx context.Context, userID string, in PortfolioInput) (*models.Portfolio, bool, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		applyPortfolioInput(p, in)
		if err := s.repo.Update(ctx, p); err != nil {
			return nil, false, translatePortfolioErr(err)
		}
		return p, false, nil

	case errors.Is(err, repository.ErrPortfolioNotFound):
		p = models.NewDefaultPortfolio(userID)
		applyPortfolioInput(p, in)
		if err := s.repo.Create(ctx, p); err != nil {
			return nil, false, err
		}
		return p, true, nil

	default:
		return nil, false, err
	}
}

// AddSkill добавляет навык в конец последовательности.
// Отсутствующее портфолио создаётся с базовыми дефолтами: truthy-merge
// на пути добавления не применяется.
func (s *PortfolioService) AddSkill(ctx context.Context, userID string, skill models.Skill) (*models.Portfolio, error) {
	return s.appendItem(ctx, userID, func(p *models.Portfolio) {
		p.Skills = append(p.Skills, skill)
	})
}

// AddProject добавляет работу в конец последовательности.
func (s *PortfolioService) AddProject(ctx context.Context, userID string, project models.Project) (*models.Portfolio, error) {
	if project.Category == "" {
		project.Category = "web"
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	return s.appendItem(ctx, userID, func(p *models.Portfolio) {
		p.Projects = append(p.Projects, project)
	})
}

// AddExperience добавляет запись таймлайна в конец последовательности.
func (s *PortfolioService) AddExperience(ctx context.Context, userID string, exp models.Experience) (*models.Portfolio, error) {
	return s.appendItem(ctx, userID, func(p *models.Portfolio) {
		p.Experience = append(p.Experience, exp)
	})
}

// UpdateSkill целиком заменяет навык на позиции index.
func (s *PortfolioService) UpdateSkill(ctx context.Context, userID string, index int, skill models.Skill) (*models.Portfolio, error) {
	return s.mutateExisting(ctx, userID, func(p *models.Portfolio) error {
		if index < 0 || index >= len(p.Skills) {
			return apperror.ErrInvalidIndex
		}
		p.Skills[index] = skill
		return nil
	})
}

// DeleteSkill удаляет навык на позиции index; последующие индексы сдвигаются.
func (s *PortfolioService) DeleteSkill(ctx context.Context, userID string, index int) (*models.Portfolio, error) {
	return s.mutateExisting(ctx, userID, func(p *models.Portfolio) error {
		if index < 0 || index >= len(p.Skills) {
			return apperror.ErrInvalidIndex
		}
		p.Skills = append(p.Skills[:index], p.Skills[index+1:]...)
		return nil
	})
}

// UpdateProject целиком заменяет работу на позиции index.
func (s *PortfolioService) UpdateProject(ctx context.Context, userID string, index int, project models.Project) (*models.Portfolio, error) {
	if project.Category == "" {
		project.Category = "web"
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	return s.mutateExisting(ctx, userID, func(p *models.Portfolio) error {
		if index < 0 || index >= len(p.Projects) {
			return apperror.ErrInvalidIndex
		}
		p.Projects[index] = project
		return nil
	})
}

// DeleteProject удаляет работу на позиции index.
func (s *PortfolioService) DeleteProject(ctx context.Context, userID string, index int) (*models.Portfolio, error) {
	return s.mutateExisting(ctx, userID, func(p *models.Portfolio) error {
		if index < 0 || index >= len(p.Projects) {
			return apperror.ErrInvalidIndex
		}
		p.Projects = append(p.Projects[:index], p.Projects[index+1:]...)
		return nil
	})
}

// UpdateExperience целиком заменяет запись на позиции index.
func (s *PortfolioService) UpdateExperience(ctx context.Context, userID string, index int, exp models.Experience) (*models.Portfolio, error) {
	return s.mutateExisting(ctx, userID, func(p *models.Portfolio) error {
		if index < 0 || index >= len(p.Experience) {
			return apperror.ErrInvalidIndex
		}
		p.Experience[index] = exp
		return nil
	})
}

// DeleteExperience удаляет запись на позиции index.
func (s *PortfolioService) DeleteExperience(ctx context.Context, userID string, index int) (*models.Portfolio, error) {
	return s.mutateExisting(ctx, userID, func(p *models.Portfolio) error {
		if index < 0 || index >= len(p.Experience) {
			return apperror.ErrInvalidIndex
		}
		p.Experience = append(p.Experience[:index], p.Experience[index+1:]...)
		return nil
	})
}

// UpdateTheme безусловно устанавливает тему существующего портфолио.
// Значения вне канонического набора сохраняются как есть.
func (s *PortfolioService) UpdateTheme(ctx context.Context, userID string, theme string) (*models.Portfolio, error) {
	return s.mutateExisting(ctx, userID, func(p *models.Portfolio) error {
		p.Theme = theme
		return nil
	})
}

// UpdateContactInfo сливает контакты поключево: каждый переданный ключ
// перезаписывает сохранённый, в том числе пустой строкой. Это контраст
// к truthy-merge операции CreateOrUpdate.
func (s *PortfolioService) UpdateContactInfo(ctx context.Context, userID string, in ContactInput) (*models.Portfolio, error) {
	return s.mutateExisting(ctx, userID, func(p *models.Portfolio) error {
		if in.Email != nil {
			p.Contact.Email = *in.Email
		}
		if in.Phone != nil {
			p.Contact.Phone = *in.Phone
		}
		if in.Location != nil {
			p.Contact.Location = *in.Location
		}
		if in.GitHub != nil {
			p.Contact.GitHub = *in.GitHub
		}
		if in.LinkedIn != nil {
			p.Contact.LinkedIn = *in.LinkedIn
		}
		if in.Twitter != nil {
			p.Contact.Twitter = *in.Twitter
		}
		if in.Website != nil {
			p.Contact.Website = *in.Website
		}
		return nil
	})
}

// Delete удаляет документ портфолио целиком.
func (s *PortfolioService) Delete(ctx context.Context, userID string) error {
	if err := s.repo.DeleteByUserID(ctx, userID); err != nil {
		return translatePortfolioErr(err)
	}
	return nil
}

// appendItem реализует add-путь: найти или создать с дефолтами, применить
// добавление, сохранить документ целиком.
func (s *PortfolioService) appendItem(ctx context.Context, userID string, add func(*models.Portfolio)) (*models.Portfolio, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	created := false
	if err != nil {
		if !errors.Is(err, repository.ErrPortfolioNotFound) {
			return nil, err
		}
		p = models.NewDefaultPortfolio(userID)
		created = true
	}

	add(p)

	if created {
		err = s.repo.Create(ctx, p)
	} else {
		err = s.repo.Update(ctx, p)
	}
	if err != nil {
		return nil, translatePortfolioErr(err)
	}

	return p, nil
}

// mutateExisting реализует путь мутации, требующий существования документа.
func (s *PortfolioService) mutateExisting(ctx context.Context, userID string, mutate func(*models.Portfolio) error) (*models.Portfolio, error) {
	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, translatePortfolioErr(err)
	}

	if err := mutate(p); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, translatePortfolioErr(err)
	}

	return p, nil
}

// resolveReviews раскрывает ссылки friendsReviews в документы отзывов,
// сохраняя порядок ссылок. Ссылки на уже удалённые отзывы пропускаются.
func (s *PortfolioService) resolveReviews(ctx context.Context, refs []uuid.UUID) ([]models.Review, error) {
	if len(refs) == 0 {
		return []models.Review{}, nil
	}

	loaded, err := s.reviews.ListByIDs(ctx, refs)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]models.Review, len(loaded))
	for _, review := range loaded {
		byID[review.ID] = review
	}

	result := make([]models.Review, 0, len(refs))
	for _, ref := range refs {
		if review, ok := byID[ref]; ok {
			result = append(result, review)
		}
	}

	return result, nil
}

// applyPortfolioInput применяет truthy-merge переданных полей.
func applyPortfolioInput(p *models.Portfolio, in PortfolioInput) {
	if in.Theme != "" {
		p.Theme = in.Theme
	}
	if in.About != "" {
		p.About = in.About
	}
	if in.Skills != nil {
		p.Skills = models.SkillList(in.Skills)
	}
	if in.Projects != nil {
		p.Projects = models.ProjectList(in.Projects)
	}
	if in.Experience != nil {
		p.Experience = models.ExperienceList(in.Experience)
	}
	if in.Contact != nil {
		p.Contact = *in.Contact
	}
}

// translatePortfolioErr переводит ошибки хранилища в ошибки уровня приложения.
func translatePortfolioErr(err error) error {
	if errors.Is(err, repository.ErrPortfolioNotFound) {
		return apperror.ErrPortfolioNotFound
	}
	return err
}
