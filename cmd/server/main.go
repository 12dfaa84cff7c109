package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/golfbuddy/backend/internal/config"
	"github.com/golfbuddy/backend/internal/database"
	"github.com/golfbuddy/backend/internal/handlers"
	"github.com/golfbuddy/backend/internal/logger"
	"github.com/golfbuddy/backend/internal/middleware"
	"github.com/golfbuddy/backend/internal/roster"
	"github.com/golfbuddy/backend/internal/websocket"
)

func main() {
	cfg := config.Load()
	log := logger.Init(cfg.LogLevel, cfg.IsDevelopment())

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.WithError(err).Fatal("failed to run migrations")
	}

	guests, err := roster.LoadFile(cfg.RosterFile)
	if err != nil {
		log.WithError(err).WithField("path", cfg.RosterFile).Fatal("failed to load roster")
	}

	hub := websocket.NewHub()
	go hub.Run()

	app := fiber.New(fiber.Config{
		AppName: "GolfBuddy API",
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New())

	// Public routes.
	app.Get("/health", handlers.HealthCheck)
	app.Post("/auth/login", handlers.Login(db, cfg, guests))

	// Live score stream. The websocket upgrade happens before the auth
	// middleware; the stream is read-only and carries nothing sensitive.
	app.Use("/ws", handlers.WebsocketUpgrade)
	app.Get("/ws/rounds/:roundID", handlers.LiveScores(hub))

	api := app.Group("/api/v1", middleware.Auth(cfg))

	api.Get("/auth/me", handlers.Me(db))
	api.Get("/players", handlers.GetPlayers(db))
	api.Put("/players/:id/handicap", middleware.RequireAdmin(), handlers.UpdateHandicap(db))

	api.Get("/rounds", handlers.GetRounds())
	api.Get("/rounds/:roundID", handlers.GetRound(db))
	api.Post("/rounds/:roundID/scores", handlers.SubmitScores(db, hub))
	api.Get("/rounds/:roundID/scores", handlers.GetRoundScores(db))
	api.Post("/rounds/:roundID/finalize", handlers.FinalizeRound(db))
	api.Post("/rounds/:roundID/results", middleware.RequireAdmin(), handlers.SaveRoundResults(db))
	api.Get("/rounds/:roundID/results", handlers.GetRoundResults(db))

	api.Post("/matches", handlers.CreateMatch(db))
	api.Get("/matches", handlers.GetMatches(db))
	api.Post("/matches/:matchID/settle", handlers.SettleMatch(db))
	api.Get("/matches/:matchID/results", handlers.GetMatchResults(db))

	api.Get("/leaderboards/money", handlers.MoneyLeaderboard(db))
	api.Get("/leaderboards/matches", handlers.MatchLeaderboard(db))

	log.WithField("port", cfg.Port).Info("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
