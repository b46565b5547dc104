package app

import (
	"context"

	"fairway-backend/internal/config"
	"fairway-backend/internal/database"
	"fairway-backend/internal/health"
	"fairway-backend/internal/holes"
	"fairway-backend/internal/middleware"
	"fairway-backend/internal/repository"
	"fairway-backend/internal/rounds"
	"fairway-backend/internal/stats"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// CreateApp builds the Fiber app with global middleware and all routes.
// The DB and redis client are returned so the entrypoint can ping them.
func CreateApp(cfg *config.Config) (*fiber.App, *gorm.DB, *redis.Client, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler,
	})

	app.Use(middleware.CORS(cfg.AllowedOrigins))

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, err
		}
		rdb = redis.NewClient(opts)
	}

	app.Use(middleware.HealthMarker(rdb))
	app.Use(middleware.Tracing())
	app.Use(middleware.RouteLogger())

	var db *gorm.DB
	var store repository.Store
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := database.AutoMigrate(db); err != nil {
			return nil, nil, nil, err
		}
		store = repository.NewGormStore(db)
		user, err := database.SeedDefaultUser(context.Background(), store, cfg.SeedUsername, cfg.SeedPassword, cfg.SeedName)
		if err != nil {
			return nil, nil, nil, err
		}
		log.Info().Uint("user_id", user.ID).Str("username", user.Username).Msg("default user ready")
	} else {
		// No DATABASE_URL (local experiments, some tests): fall back to the
		// in-memory store.
		store = repository.NewMemStore()
	}

	var dbPinger health.DBPinger
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			dbPinger = sqlDB
		}
	}
	healthHandlers := &health.Handlers{Rdb: rdb, DB: dbPinger}
	app.Get("/", healthHandlers.Root)
	app.Get("/health/json", healthHandlers.JSON)

	Register(app, store, stats.NewCache(rdb))

	return app, db, rdb, nil
}

// Register mounts the round-tracking API on the app. Split out so handler
// tests can mount the full route set over any Store.
func Register(app *fiber.App, store repository.Store, cache *stats.Cache) {
	statsService := &stats.Service{Store: store, Cache: cache}
	statsHandlers := &stats.Handlers{Service: statsService}

	roundsService := &rounds.Service{Store: store, Stats: cache}
	roundsHandlers := &rounds.Handlers{Service: roundsService}

	holesService := &holes.Service{Store: store, Stats: cache}
	holesHandlers := &holes.Handlers{Service: holesService}

	users := app.Group("/api/v1/users")
	users.Get("/:id/stats", statsHandlers.GetStats)
	users.Get("/:id/handicap", statsHandlers.GetHandicap)
	users.Get("/:id/rounds", roundsHandlers.ListForUser)
	users.Get("/:id/active-round", roundsHandlers.ActiveForUser)

	roundsGroup := app.Group("/api/v1/rounds")
	roundsGroup.Post("/", roundsHandlers.Create)
	roundsGroup.Get("/:id", roundsHandlers.GetByID)
	roundsGroup.Delete("/:id", roundsHandlers.Delete)
	roundsGroup.Patch("/:roundId/holes/:holeNumber", holesHandlers.Patch)
}
