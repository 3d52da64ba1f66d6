// cmd/server/main.go
//
// Leaderboard + hero API server. Boot order: env, logging, denylist,
// database (open + migrate), HTTP server.
//
// Environment variables:
//   PORT               listen port (default 5175)
//   DB_PATH            SQLite file (default ./data/app.db)
//   LOG_LEVEL          zerolog level (default info)
//   CLIENT_ORIGIN      allowed CORS origin
//   JWT_SECRET         hero session signing secret
//   HERO_DENYLIST_FILE custom hero name denylist

package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Sn4kyGit/learning-maths/internal/db"
	"github.com/Sn4kyGit/learning-maths/internal/hero"
	"github.com/Sn4kyGit/learning-maths/internal/httpserver"
	"github.com/Sn4kyGit/learning-maths/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := hero.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load hero denylist")
	}

	dbh, err := db.Open(getEnv("DB_PATH", "./data/app.db"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer dbh.Close()
	if err := db.Migrate(dbh); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	srv := httpserver.New(store.NewSQLiteStore(dbh), dbh)
	port := getEnv("PORT", "5175")
	log.Info().Str("port", port).Msg("starting learning-maths server")
	if err := srv.Start(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
