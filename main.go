package main

import (
	"os"
	"time"

	"gallery-app/config"
	"gallery-app/database"
	routes "gallery-app/internal/app/http"
	"gallery-app/internal/session"
	"gallery-app/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config.LoadEnv()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	store := selectStore()
	sessions := selectSessionStore()

	r := gin.Default()

	// CORS must run before any route handlers
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, store, sessions)

	log.Info().Str("port", config.PORT).Str("env", config.APP_ENV).Msg("listening")
	if err := r.Run(":" + config.PORT); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

// selectStore connects to Postgres when DB_URL is set. In development a
// missing or unreachable database falls back to the seeded in-memory
// store; in production it is fatal.
func selectStore() storage.Store {
	if err := database.Init(); err != nil {
		if config.IsProduction() {
			log.Fatal().Err(err).Msg("database connection failed")
		}
		log.Warn().Err(err).Msg("database unavailable, using in-memory store")
		return storage.NewMemoryWithFixtures()
	}
	log.Info().Msg("connected to postgres")
	return storage.NewDatabase(database.DB)
}

func selectSessionStore() session.Store {
	ttl := time.Duration(config.SESSION_TTL_HOURS) * time.Hour

	if config.REDIS_ADDR != "" {
		store, err := session.NewRedisStore(config.REDIS_ADDR, ttl)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		log.Info().Str("addr", config.REDIS_ADDR).Msg("sessions backed by redis")
		return store
	}

	store := session.NewMemoryStore(ttl)
	go func() {
		for range time.Tick(10 * time.Minute) {
			store.Prune()
		}
	}()
	return store
}
