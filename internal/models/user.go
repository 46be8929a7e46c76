package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// SocialLinks описывает ссылки пользователя на внешние ресурсы.
// Поле github обязательно, остальные опциональны.
type SocialLinks struct {
	GitHub   string `json:"github" binding:"required"`
	LinkedIn string `json:"linkedin,omitempty"`
	Website  string `json:"website,omitempty"`
}

// Value реализует driver.Valuer для записи в jsonb.
func (s SocialLinks) Value() (driver.Value, error) { return jsonbValue(s) }

// Scan реализует sql.Scanner для чтения из jsonb.
func (s *SocialLinks) Scan(src interface{}) error { return jsonbScan(src, s) }

// User описывает зарегистрированного пользователя.
// UID выдаётся identity-провайдером и служит стабильным идентификатором.
type User struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	UID            string       `db:"uid" json:"uid"`
	Email          string       `db:"email" json:"email"`
	Name           string       `db:"name" json:"name"`
	ProfilePicture *string      `db:"profile_picture" json:"profilePicture,omitempty"`
	SocialLinks    *SocialLinks `db:"social_links" json:"socialLinks,omitempty"`
	CreatedAt      time.Time    `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time    `db:"updated_at" json:"updatedAt"`
}
