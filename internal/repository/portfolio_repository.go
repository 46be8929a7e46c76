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

// ErrPortfolioNotFound возвращается, когда портфолио не найдено.
var ErrPortfolioNotFound = errors.New("portfolio not found")

const portfolioColumns = `id, user_id, theme, about, skills, projects, experience, contact, friends_reviews, created_at, updated_at`

// PortfolioRepository отвечает за хранение документов портфолио.
type PortfolioRepository struct {
	db *sqlx.DB
}

// NewPortfolioRepository создаёт экземпляр репозитория.
func NewPortfolioRepository(db *sqlx.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// Create сохраняет новый документ портфолио.
func (r *PortfolioRepository) Create(ctx context.Context, p *models.Portfolio) error {
	query := `
		INSERT INTO portfolios (user_id, theme, about, skills, projects, experience, contact, friends_reviews)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	if err := r.db.QueryRowxContext(
		ctx,
		query,
		p.UserID,
		p.Theme,
		p.About,
		p.Skills,
		p.Projects,
		p.Experience,
		p.Contact,
		pq.Array(p.FriendsReviews),
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return fmt.Errorf("portfolio repository: insert %w", err)
	}

	return nil
}

// Update перезаписывает документ целиком: частичного сохранения полей нет.
func (r *PortfolioRepository) Update(ctx context.Context, p *models.Portfolio) error {
	query := `
		UPDATE portfolios
		SET theme = $2,
		    about = $3,
		    skills = $4,
		    projects = $5,
		    experience = $6,
		    contact = $7,
		    friends_reviews = $8,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	if err := r.db.QueryRowxContext(
		ctx,
		query,
		p.ID,
		p.Theme,
		p.About,
		p.Skills,
		p.Projects,
		p.Experience,
		p.Contact,
		pq.Array(p.FriendsReviews),
	).Scan(&p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrPortfolioNotFound
		}
		return fmt.Errorf("portfolio repository: update %w", err)
	}

	return nil
}

// GetByUserID возвращает портфолио владельца.
func (r *PortfolioRepository) GetByUserID(ctx context.Context, userID string) (*models.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE user_id = $1`
	return r.getOne(ctx, query, userID)
}

// GetByID возвращает портфолио по идентификатору документа.
func (r *PortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Portfolio, error) {
	query := `SELECT ` + portfolioColumns + ` FROM portfolios WHERE id = $1`
	return r.getOne(ctx, query, id)
}

// DeleteByUserID удаляет документ портфолио.
func (r *PortfolioRepository) DeleteByUserID(ctx context.Context, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM portfolios WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("portfolio repository: delete %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("portfolio repository: delete rows affected %w", err)
	}

	if rowsAffected == 0 {
		return ErrPortfolioNotFound
	}

	return nil
}

// PullReviewRef убирает ссылку на отзыв из friends_reviews.
// Отсутствующее портфолио не считается ошибкой: удаление отзыва
// не должно блокироваться уже вычищенной обратной ссылкой.
func (r *PortfolioRepository) PullReviewRef(ctx context.Context, portfolioID, reviewID uuid.UUID) error {
	query := `
		UPDATE portfolios
		SET friends_reviews = array_remove(friends_reviews, $2),
		    updated_at = NOW()
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, portfolioID, reviewID); err != nil {
		return fmt.Errorf("portfolio repository: pull review ref %w", err)
	}
	return nil
}

func (r *PortfolioRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.Portfolio, error) {
	var p models.Portfolio

	if err := r.db.QueryRowxContext(ctx, query, arg).Scan(
		&p.ID,
		&p.UserID,
		&p.Theme,
		&p.About,
		&p.Skills,
		&p.Projects,
		&p.Experience,
		&p.Contact,
		pq.Array(&p.FriendsReviews),
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPortfolioNotFound
		}
		return nil, fmt.Errorf("portfolio repository: get %w", err)
	}

	if p.FriendsReviews == nil {
		p.FriendsReviews = []uuid.UUID{}
	}

	return &p, nil
}
