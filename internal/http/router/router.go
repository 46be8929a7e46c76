package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/identity"
)

// SetupRouter собирает таблицу маршрутов. Чтение портфолио и весь CRUD
// отзывов открыты, мутации портфолио и профиль требуют bearer токен.
func SetupRouter(
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	portfolioHandler *handlers.PortfolioHandler,
	reviewHandler *handlers.ReviewHandler,
	mediaHandler *handlers.MediaHandler,
	healthHandler *handlers.HealthHandler,
	provider identity.Provider,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.StaticFS("/media", http.Dir(cfg.MediaStoragePath))

	api := r.Group("/api")

	requireAuth := middleware.AuthMiddleware(provider)
	rateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)

	authGroup := api.Group("/auth")
	authGroup.Use(rateLimit)
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}
	api.PUT("/auth/profile/:uid", requireAuth, authHandler.UpdateProfile)

	// Публичные маршруты портфолио. Конкретные пути идут раньше
	// динамического :userId.
	api.GET("/portfolio/github/:username", portfolioHandler.ImportGitHub)
	api.GET("/portfolio/:userId", portfolioHandler.Get)
	api.POST("/portfolio/:userId/contact", portfolioHandler.ContactForm)

	// Мутации портфолио
	portfolio := api.Group("/portfolio")
	portfolio.Use(requireAuth)
	{
		portfolio.POST("/:userId", portfolioHandler.Upsert)
		portfolio.DELETE("/:userId", portfolioHandler.Delete)

		portfolio.POST("/:userId/skills", portfolioHandler.AddSkill)
		portfolio.PUT("/:userId/skills/:skillIndex", portfolioHandler.UpdateSkill)
		portfolio.DELETE("/:userId/skills/:skillIndex", portfolioHandler.DeleteSkill)

		portfolio.POST("/:userId/projects", portfolioHandler.AddProject)
		portfolio.PUT("/:userId/projects/:projectIndex", portfolioHandler.UpdateProject)
		portfolio.DELETE("/:userId/projects/:projectIndex", portfolioHandler.DeleteProject)

		portfolio.POST("/:userId/experience", portfolioHandler.AddExperience)
		portfolio.PUT("/:userId/experience/:experienceIndex", portfolioHandler.UpdateExperience)
		portfolio.DELETE("/:userId/experience/:experienceIndex", portfolioHandler.DeleteExperience)

		portfolio.PATCH("/:userId/theme", portfolioHandler.UpdateTheme)
		portfolio.PUT("/:userId/contact", portfolioHandler.UpdateContactInfo)
	}

	// Отзывы оставляют посетители: авторизация не требуется,
	// создание прикрыто rate limit.
	api.GET("/reviews/:portfolioId", middleware.UUIDValidator("portfolioId"), reviewHandler.List)
	api.POST("/reviews/:portfolioId", rateLimit, middleware.UUIDValidator("portfolioId"), reviewHandler.Create)
	api.PATCH("/reviews/:reviewId", middleware.UUIDValidator("reviewId"), reviewHandler.Update)
	api.DELETE("/reviews/:reviewId", middleware.UUIDValidator("reviewId"), reviewHandler.Delete)

	api.POST("/media/photos", requireAuth, mediaHandler.UploadPhoto)

	return r
}
