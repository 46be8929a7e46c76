package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// ReviewRepository описывает взаимодействие сервиса с хранилищем отзывов.
type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error)
	ListByPortfolioID(ctx context.Context, portfolioID uuid.UUID) ([]models.Review, error)
	Update(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// PortfolioRepoForReviews — зависимости сервиса отзывов от портфолио.
type PortfolioRepoForReviews interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Portfolio, error)
	PullReviewRef(ctx context.Context, portfolioID, reviewID uuid.UUID) error
}

// ReviewInput содержит данные нового отзыва.
type ReviewInput struct {
	ReviewerName    string
	ReviewerProfile *string
	Comment         string
	Rating          int
}

// ReviewService реализует операции над отзывами и поддерживает
// обратные ссылки friendsReviews на стороне портфолио.
type ReviewService struct {
	repo       ReviewRepository
	portfolios PortfolioRepoForReviews
}

// NewReviewService создаёт сервис отзывов.
func NewReviewService(repo ReviewRepository, portfolios PortfolioRepoForReviews) *ReviewService {
	return &ReviewService{repo: repo, portfolios: portfolios}
}

// List возвращает отзывы портфолио, новые первыми.
func (s *ReviewService) List(ctx context.Context, portfolioID uuid.UUID) ([]models.Review, error) {
	return s.repo.ListByPortfolioID(ctx, portfolioID)
}

// Add создаёт отзыв для существующего портфолио и добавляет его
// идентификатор в friendsReviews.
func (s *ReviewService) Add(ctx context.Context, portfolioID uuid.UUID, in ReviewInput) (*models.Review, error) {
	if err := validation.ValidateRating(in.Rating); err != nil {
		return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
	}

	if _, err := s.portfolios.GetByID(ctx, portfolioID); err != nil {
		if errors.Is(err, repository.ErrPortfolioNotFound) {
			return nil, apperror.ErrPortfolioNotFound
		}
		return nil, err
	}

	review := &models.Review{
		PortfolioID:     portfolioID,
		ReviewerName:    in.ReviewerName,
		ReviewerProfile: in.ReviewerProfile,
		Comment:         in.Comment,
		Rating:          in.Rating,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// Update применяет truthy-merge к существующему отзыву: пустой comment
// и нулевой rating не затирают сохранённые значения.
func (s *ReviewService) Update(ctx context.Context, reviewID uuid.UUID, comment string, rating int) (*models.Review, error) {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, translateReviewErr(err)
	}

	if comment != "" {
		review.Comment = comment
	}
	if rating != 0 {
		if err := validation.ValidateRating(rating); err != nil {
			return nil, apperror.New(apperror.ErrCodeValidation, err.Error())
		}
		review.Rating = rating
	}

	if err := s.repo.Update(ctx, review); err != nil {
		return nil, translateReviewErr(err)
	}

	return review, nil
}

// Delete удаляет отзыв и вычищает обратную ссылку из портфолио.
// Ошибка вычистки логируется, но не блокирует удаление: первичный
// эффект операции — удаление самого отзыва.
func (s *ReviewService) Delete(ctx context.Context, reviewID uuid.UUID) error {
	review, err := s.repo.GetByID(ctx, reviewID)
	if err != nil {
		return translateReviewErr(err)
	}

	if err := s.portfolios.PullReviewRef(ctx, review.PortfolioID, review.ID); err != nil {
		if logger.Log != nil {
			logger.Log.WithFields(map[string]interface{}{
				"review_id":    review.ID,
				"portfolio_id": review.PortfolioID,
				"error":        err.Error(),
			}).Warn("review service: не удалось вычистить обратную ссылку")
		}
	}

	if err := s.repo.Delete(ctx, reviewID); err != nil {
		return translateReviewErr(err)
	}

	return nil
}

// translateReviewErr переводит ошибки хранилища в ошибки уровня приложения.
func translateReviewErr(err error) error {
	if errors.Is(err, repository.ErrReviewNotFound) {
		return apperror.ErrReviewNotFound
	}
	return err
}
