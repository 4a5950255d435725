package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	authController "github.com/Fin1704/3KingAuto-server/internal/auth/controller"
	authRepository "github.com/Fin1704/3KingAuto-server/internal/auth/repository"
	authUsecase "github.com/Fin1704/3KingAuto-server/internal/auth/usecase"
	"github.com/Fin1704/3KingAuto-server/internal/game/catalog"
	gameController "github.com/Fin1704/3KingAuto-server/internal/game/controller"
	gameRepository "github.com/Fin1704/3KingAuto-server/internal/game/repository"
	"github.com/Fin1704/3KingAuto-server/internal/game/reward"
	gameUsecase "github.com/Fin1704/3KingAuto-server/internal/game/usecase"
	"github.com/Fin1704/3KingAuto-server/internal/service/config"
	"github.com/Fin1704/3KingAuto-server/internal/service/logger"
	"github.com/Fin1704/3KingAuto-server/internal/service/middleware"
	"github.com/Fin1704/3KingAuto-server/internal/service/router"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.InitLoggers(cfg.Log.AccessPath, cfg.Log.DBPath); err != nil {
		log.Fatalf("Failed to initialize loggers: %v", err)
	}
	defer func() {
		_ = logger.SyncLoggers()
	}()

	db, err := middleware.DbConnect(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	jwtToken, err := middleware.NewJwtToken(cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to create JWT token: %v", err)
	}

	heroes := catalog.Default()
	if cfg.HeroCatalogPath != "" {
		heroes, err = catalog.Load(cfg.HeroCatalogPath)
		if err != nil {
			log.Fatalf("Failed to load hero catalog: %v", err)
		}
	}

	var guard mux.MiddlewareFunc
	redisClient, err := middleware.InitRedis(ctx, cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}
	if redisClient != nil {
		defer redisClient.Close()
		guard = middleware.IdempotencyMiddleware(middleware.NewRedisIdempotencyStore(redisClient), cfg.Redis.IdempotencyTTL)
	}

	middleware.SetRequestTimeout(cfg.RequestTimeout)

	authRepository := authRepository.NewAuthRepository(db)
	authUseCase := authUsecase.NewAuthUsecase(authRepository, heroes)
	authHandler := authController.NewAuthHandler(authUseCase, jwtToken, cfg.TokenTTL)

	gameRepository := gameRepository.NewGameRepository(db)
	gameUseCase := gameUsecase.NewGameUsecase(gameRepository, reward.NewEngine(), heroes)
	gameHandler := gameController.NewGameHandler(gameUseCase, jwtToken)

	mainRouter := router.SetUpRoutes(authHandler, gameHandler, guard)
	mainRouter.Use(middleware.RequestIDMiddleware)
	mainRouter.Use(middleware.RecoverMiddleware)
	mainRouter.Use(middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware)

	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           middleware.EnableCORS(cfg.FrontendURL)(mainRouter),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.AccessLogger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	fmt.Printf("Starting HTTP server on address %s (tls=%t)\n", cfg.ListenAddr, cfg.TLSEnabled())
	if cfg.TLSEnabled() {
		err = server.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
	} else {
		err = server.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Printf("Error on starting server: %s\n", err)
	}
}
