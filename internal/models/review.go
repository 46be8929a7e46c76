package models

import (
	"time"

	"github.com/google/uuid"
)

// Review описывает отзыв посетителя о портфолио.
// PortfolioID обязателен и неизменяем после создания.
type Review struct {
	ID              uuid.UUID `db:"id" json:"id"`
	PortfolioID     uuid.UUID `db:"portfolio_id" json:"portfolioId"`
	ReviewerName    string    `db:"reviewer_name" json:"reviewerName"`
	ReviewerProfile *string   `db:"reviewer_profile" json:"reviewerProfile,omitempty"`
	Comment         string    `db:"comment" json:"comment"`
	Rating          int       `db:"rating" json:"rating"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}
