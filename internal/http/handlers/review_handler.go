package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers/common"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// ReviewHandler предоставляет HTTP слой для отзывов посетителей.
type ReviewHandler struct {
	reviews *service.ReviewService
}

// NewReviewHandler создаёт хэндлер.
func NewReviewHandler(reviews *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// List обрабатывает GET /reviews/:portfolioId.
func (h *ReviewHandler) List(c *gin.Context) {
	portfolioID, err := common.ParseUUIDParam(c, "portfolioId")
	if err != nil {
		common.RespondBadRequest(c, "неверный portfolioId")
		return
	}

	reviews, err := h.reviews.List(c.Request.Context(), portfolioID)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "отзывы получены", "reviews": reviews})
}

// Create обрабатывает POST /reviews/:portfolioId.
func (h *ReviewHandler) Create(c *gin.Context) {
	portfolioID, err := common.ParseUUIDParam(c, "portfolioId")
	if err != nil {
		common.RespondBadRequest(c, "неверный portfolioId")
		return
	}

	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	review, err := h.reviews.Add(c.Request.Context(), portfolioID, service.ReviewInput{
		ReviewerName:    req.ReviewerName,
		ReviewerProfile: req.ReviewerProfile,
		Comment:         req.Comment,
		Rating:          req.Rating,
	})
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ReviewResponse{
		Message: "отзыв добавлен",
		Review:  review,
	})
}

// Update обрабатывает PATCH /reviews/:reviewId.
func (h *ReviewHandler) Update(c *gin.Context) {
	reviewID, err := common.ParseUUIDParam(c, "reviewId")
	if err != nil {
		common.RespondBadRequest(c, "неверный reviewId")
		return
	}

	var req dto.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.RespondBadRequest(c, err.Error())
		return
	}

	review, err := h.reviews.Update(c.Request.Context(), reviewID, req.Comment, req.Rating)
	if err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReviewResponse{
		Message: "отзыв обновлён",
		Review:  review,
	})
}

// Delete обрабатывает DELETE /reviews/:reviewId.
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, err := common.ParseUUIDParam(c, "reviewId")
	if err != nil {
		common.RespondBadRequest(c, "неверный reviewId")
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), reviewID); err != nil {
		common.RespondAppError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "отзыв удалён"})
}
