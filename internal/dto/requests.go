package dto

import (
	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// RegisterRequest represents the request to register a new user
type RegisterRequest struct {
	Email    string `json:"email" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the request to authenticate a user
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest represents a partial profile update
type UpdateProfileRequest struct {
	Name           string              `json:"name"`
	ProfilePicture string              `json:"profilePicture"`
	SocialLinks    *models.SocialLinks `json:"socialLinks"`
}

// UpsertPortfolioRequest represents the create-or-update portfolio payload.
// Omitted collections stay nil so the service can tell "not sent" from "sent empty".
type UpsertPortfolioRequest struct {
	Theme      string              `json:"theme"`
	About      string              `json:"about"`
	Skills     []models.Skill      `json:"skills"`
	Projects   []models.Project    `json:"projects"`
	Experience []models.Experience `json:"experience"`
	Contact    *models.Contact     `json:"contact"`
}

// SkillRequest represents a single skill payload
type SkillRequest struct {
	Name  string `json:"name" binding:"required"`
	Level int    `json:"level"`
}

// ProjectRequest represents a single project payload
type ProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	RepoLink     string   `json:"repoLink"`
	LiveDemo     string   `json:"liveDemo"`
	Image        string   `json:"image"`
	Category     string   `json:"category"`
	Technologies []string `json:"technologies"`
	Featured     bool     `json:"featured"`
}

// ExperienceRequest represents a single experience entry payload
type ExperienceRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// UpdateThemeRequest represents the request to switch portfolio theme
type UpdateThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}

// UpdateContactInfoRequest represents a key-wise contact update.
// Pointer fields distinguish "key absent" from "key set to empty string".
type UpdateContactInfoRequest struct {
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	GitHub   *string `json:"github"`
	LinkedIn *string `json:"linkedin"`
	Twitter  *string `json:"twitter"`
	Website  *string `json:"website"`
}

// CreateReviewRequest represents the request to leave a review
type CreateReviewRequest struct {
	ReviewerName    string  `json:"reviewerName" binding:"required"`
	ReviewerProfile *string `json:"reviewerProfile"`
	Comment         string  `json:"comment" binding:"required"`
	Rating          int     `json:"rating" binding:"required,min=1,max=5"`
}

// UpdateReviewRequest represents a partial review update
type UpdateReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

// ContactFormRequest represents the public contact form payload
type ContactFormRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}
