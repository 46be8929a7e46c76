package dto

import (
	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// PortfolioResponse represents a portfolio with its review references
// expanded into full review documents
type PortfolioResponse struct {
	*models.Portfolio
	FriendsReviews []models.Review `json:"friendsReviews"`
}

// NewPortfolioResponse creates a PortfolioResponse from components
func NewPortfolioResponse(p *models.Portfolio, reviews []models.Review) *PortfolioResponse {
	if reviews == nil {
		reviews = []models.Review{}
	}
	return &PortfolioResponse{
		Portfolio:      p,
		FriendsReviews: reviews,
	}
}

// MessageResponse represents a plain confirmation message
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error payload
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// AuthResponse represents the login result
type AuthResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// UserResponse represents a user wrapped with a confirmation message
type UserResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

// ReviewResponse represents a review wrapped with a confirmation message
type ReviewResponse struct {
	Message string         `json:"message"`
	Review  *models.Review `json:"review"`
}

// PortfolioMessageResponse represents a portfolio wrapped with a confirmation message
type PortfolioMessageResponse struct {
	Message   string             `json:"message"`
	Portfolio *PortfolioResponse `json:"portfolio"`
}

// MediaUploadResponse represents the stored media file location
type MediaUploadResponse struct {
	Message string `json:"message"`
	URL     string `json:"url"`
}
