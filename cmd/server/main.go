package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/db"
	httpHandlers "github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/portfolio-backend/internal/http/router"
	"github.com/ignatzorin/portfolio-backend/internal/identity"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
		logger.Init(logLevel)
		logger.SetTextFormatter()
	} else {
		logger.Init(logLevel)
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	// Учётные данные identity-провайдера; в development допустим фоллбэк.
	creds, err := identity.LoadCredentials(cfg.IdentityCredentials)
	if err != nil {
		if cfg.Env == "production" {
			log.Fatalf("main: ошибка загрузки учётных данных identity-провайдера: %v", err)
		}
		log.Printf("main: используем dev учётные данные identity-провайдера: %v", err)
		creds = identity.DevCredentials()
	}

	photoStorage, err := storage.NewPhotoStorage(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	// Репозитории.
	accountRepo := repository.NewAccountRepository(dbConn)
	userRepo := repository.NewUserRepository(dbConn)
	portfolioRepo := repository.NewPortfolioRepository(dbConn)
	reviewRepo := repository.NewReviewRepository(dbConn)

	// Identity-провайдер.
	provider := identity.NewTokenService(accountRepo, creds, cfg.TokenTTL)

	// Сервисы.
	authService := service.NewAuthService(userRepo, provider)
	portfolioService := service.NewPortfolioService(portfolioRepo, reviewRepo)
	reviewService := service.NewReviewService(reviewRepo, portfolioRepo)
	githubService := service.NewGitHubService(cfg.GitHubAPIBaseURL)

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	portfolioHandler := httpHandlers.NewPortfolioHandler(portfolioService, githubService)
	reviewHandler := httpHandlers.NewReviewHandler(reviewService)
	mediaHandler := httpHandlers.NewMediaHandler(photoStorage)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, portfolioHandler, reviewHandler, mediaHandler, healthHandler, provider)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	}()

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
