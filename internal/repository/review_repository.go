package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// ErrReviewNotFound возвращается, когда отзыв не найден.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository отвечает за хранение отзывов.
type ReviewRepository struct {
	db *sqlx.DB
}

// NewReviewRepository создаёт экземпляр репозитория.
func NewReviewRepository(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create сохраняет отзыв и добавляет обратную ссылку в портфолио.
// Обе записи выполняются в одной транзакции, чтобы happy path не
// оставлял рассинхронизированную пару документов.
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	tx, err := r.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("review repository: begin tx %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	query := `
		INSERT INTO reviews (portfolio_id, reviewer_name, reviewer_profile, comment, rating)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	if err = tx.QueryRowxContext(
		ctx,
		query,
		review.PortfolioID,
		review.ReviewerName,
		review.ReviewerProfile,
		review.Comment,
		review.Rating,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt); err != nil {
		return fmt.Errorf("review repository: insert %w", err)
	}

	if _, err = tx.ExecContext(ctx, `
		UPDATE portfolios
		SET friends_reviews = array_append(friends_reviews, $2),
		    updated_at = NOW()
		WHERE id = $1
	`, review.PortfolioID, review.ID); err != nil {
		return fmt.Errorf("review repository: append review ref %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("review repository: commit %w", err)
	}

	return nil
}

// GetByID возвращает отзыв по идентификатору.
func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Review, error) {
	var review models.Review
	err := r.db.GetContext(ctx, &review, `
		SELECT id, portfolio_id, reviewer_name, reviewer_profile, comment, rating, created_at, updated_at
		FROM reviews WHERE id = $1
	`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("review repository: get by id %w", err)
	}
	return &review, nil
}

// ListByPortfolioID возвращает отзывы портфолио, новые первыми.
func (r *ReviewRepository) ListByPortfolioID(ctx context.Context, portfolioID uuid.UUID) ([]models.Review, error) {
	reviews := []models.Review{}
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT id, portfolio_id, reviewer_name, reviewer_profile, comment, rating, created_at, updated_at
		FROM reviews WHERE portfolio_id = $1 ORDER BY created_at DESC
	`, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("review repository: list %w", err)
	}
	return reviews, nil
}

// ListByIDs возвращает отзывы по набору идентификаторов (порядок не гарантирован).
func (r *ReviewRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Review, error) {
	if len(ids) == 0 {
		return []models.Review{}, nil
	}

	reviews := []models.Review{}
	err := r.db.SelectContext(ctx, &reviews, `
		SELECT id, portfolio_id, reviewer_name, reviewer_profile, comment, rating, created_at, updated_at
		FROM reviews WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("review repository: list by ids %w", err)
	}
	return reviews, nil
}

// Update сохраняет изменённые comment и rating.
func (r *ReviewRepository) Update(ctx context.Context, review *models.Review) error {
	err := r.db.QueryRowxContext(ctx, `
		UPDATE reviews SET comment = $2, rating = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`, review.ID, review.Comment, review.Rating).Scan(&review.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrReviewNotFound
		}
		return fmt.Errorf("review repository: update %w", err)
	}
	return nil
}

// Delete удаляет отзыв.
func (r *ReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("review repository: delete %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("review repository: delete rows affected %w", err)
	}

	if rowsAffected == 0 {
		return ErrReviewNotFound
	}

	return nil
}
