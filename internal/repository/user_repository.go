package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// ErrUserNotFound возвращается, когда пользователь не найден.
var ErrUserNotFound = errors.New("user not found")

// UserRepository отвечает за хранение пользователей.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт экземпляр репозитория.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет нового пользователя.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (uid, email, name, profile_picture, social_links)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	links, err := marshalSocialLinks(user.SocialLinks)
	if err != nil {
		return err
	}

	if err := r.db.QueryRowxContext(
		ctx,
		query,
		user.UID,
		user.Email,
		user.Name,
		user.ProfilePicture,
		links,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return fmt.Errorf("user repository: insert %w", err)
	}

	return nil
}

// GetByUID возвращает пользователя по идентификатору identity-провайдера.
func (r *UserRepository) GetByUID(ctx context.Context, uid string) (*models.User, error) {
	return r.getOne(ctx, `WHERE uid = $1`, uid)
}

// GetByEmail возвращает пользователя по email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx, `WHERE email = $1`, email)
}

// Update сохраняет изменённые поля профиля.
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = $2,
		    profile_picture = $3,
		    social_links = $4,
		    updated_at = NOW()
		WHERE uid = $1
		RETURNING updated_at
	`

	links, err := marshalSocialLinks(user.SocialLinks)
	if err != nil {
		return err
	}

	if err := r.db.QueryRowxContext(ctx, query, user.UID, user.Name, user.ProfilePicture, links).
		Scan(&user.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		return fmt.Errorf("user repository: update %w", err)
	}

	return nil
}

func (r *UserRepository) getOne(ctx context.Context, where string, arg interface{}) (*models.User, error) {
	query := `
		SELECT id, uid, email, name, profile_picture, social_links, created_at, updated_at
		FROM users ` + where

	var user models.User
	var linksRaw []byte

	if err := r.db.QueryRowxContext(ctx, query, arg).Scan(
		&user.ID,
		&user.UID,
		&user.Email,
		&user.Name,
		&user.ProfilePicture,
		&linksRaw,
		&user.CreatedAt,
		&user.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("user repository: get %w", err)
	}

	if len(linksRaw) > 0 {
		var links models.SocialLinks
		if err := json.Unmarshal(linksRaw, &links); err != nil {
			return nil, fmt.Errorf("user repository: разбор social_links %w", err)
		}
		user.SocialLinks = &links
	}

	return &user, nil
}

// marshalSocialLinks сериализует ссылки в jsonb; nil остаётся NULL.
func marshalSocialLinks(links *models.SocialLinks) (interface{}, error) {
	if links == nil {
		return nil, nil
	}
	data, err := json.Marshal(links)
	if err != nil {
		return nil, fmt.Errorf("user repository: сериализация social_links %w", err)
	}
	return data, nil
}
