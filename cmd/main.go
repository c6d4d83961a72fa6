// @title Health Monitoring API
// @version 1.0
// @description REST backend for tracking blood-pressure readings per user

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	_ "health-monitoring-backend/docs" // This is required for swagger
	"health-monitoring-backend/internal/config"
	"health-monitoring-backend/internal/handlers"
	"health-monitoring-backend/internal/middleware"
	"health-monitoring-backend/internal/repository"
	"health-monitoring-backend/internal/routes"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL)
	if err != nil {
		log.Fatalf("parse DATABASE_URL: %v", err)
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "health-monitoring-backend"
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	{
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Database.ConnTimeout)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			log.Fatalf("ping: %v", err)
		}

		var version string
		if err := pool.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
			log.Fatalf("query server version: %v", err)
		}
		log.Printf("Connected to %s", version)
	}

	userRepo := repository.NewUserRepository(pool)
	readingRepo := repository.NewReadingRepository(pool)

	authHandler := handlers.NewAuthHandler(userRepo, &cfg.JWT)
	userHandler := handlers.NewUserHandler(userRepo)
	readingHandler := handlers.NewReadingHandler(readingRepo)
	healthHandler := handlers.NewHealthHandler(pool)

	mux := routes.SetupRoutes(authHandler, userHandler, readingHandler, healthHandler)

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
	})
	handler := c.Handler(middleware.RequestID(mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("App is listening on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped.")
}
