package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"fitlife/internal/config"
	"fitlife/internal/db"
	"fitlife/internal/handlers"
	mw "fitlife/internal/middleware"
	"fitlife/internal/service"
	"fitlife/internal/store/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		// Logger is not up yet.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.IsProduction() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		logger.Fatal("FITLIFE_DATABASE_URL is required")
	}
	dbConn, err := sqlx.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to open db", zap.Error(err))
	}
	dbConn.SetMaxOpenConns(10)
	dbConn.SetConnMaxLifetime(2 * time.Hour)
	if err := dbConn.Ping(); err != nil {
		logger.Fatal("failed to ping db", zap.Error(err))
	}
	defer dbConn.Close()
	if err := db.RunMigrations(dbConn); err != nil {
		logger.Fatal("failed migrations", zap.Error(err))
	}

	st := postgres.New(dbConn)
	authSvc := service.NewAuthService(st, logger)
	bmiSvc := service.NewBMIService(st, logger)
	dietSvc := service.NewDietService(st, logger)
	activitySvc := service.NewActivityService(st, logger)
	goalSvc := service.NewGoalService(st, logger)

	authHandler := handlers.NewAuthHandler(authSvc, []byte(cfg.JWTSecret), handlers.OAuthCredentials{
		GoogleClientID:     cfg.GoogleClientID,
		GoogleClientSecret: cfg.GoogleClientSecret,
		GithubClientID:     cfg.GithubClientID,
		GithubClientSecret: cfg.GithubClientSecret,
		RedirectBase:       cfg.AuthBaseURL,
	}, cfg.IsProduction(), logger)
	bmiHandler := handlers.NewBMIHandler(bmiSvc)
	dietHandler := handlers.NewDietHandler(dietSvc)
	activityHandler := handlers.NewActivityHandler(activitySvc)
	goalHandler := handlers.NewGoalHandler(goalSvc)
	authMW := mw.NewAuthMiddleware([]byte(cfg.JWTSecret))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(mw.RequestLogger(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api", func(api chi.Router) {
		api.Post("/auth/register", authHandler.Register)
		api.Post("/auth/login", authHandler.Login)
		api.Get("/auth/google", authHandler.GoogleAuth)
		api.Get("/auth/google/callback", authHandler.GoogleCallback)
		api.Get("/auth/github", authHandler.GitHubAuth)
		api.Get("/auth/github/callback", authHandler.GitHubCallback)

		api.Group(func(pr chi.Router) {
			pr.Use(authMW.RequireAuth)
			pr.Get("/bmi", bmiHandler.List)
			pr.Post("/bmi", bmiHandler.Create)
			pr.Get("/diet", dietHandler.List)
			pr.Post("/diet", dietHandler.Create)
			pr.Get("/fitness", activityHandler.List)
			pr.Post("/fitness", activityHandler.Create)
			pr.Delete("/fitness", activityHandler.Delete)
			pr.Get("/fitness/goals", goalHandler.List)
			pr.Post("/fitness/goals", goalHandler.Create)
			pr.Put("/fitness/goals", goalHandler.UpdateProgress)
		})
	})

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown initiated")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info("server stopped")
}
