package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/qbmille/trivia-api/internal/api"
	"github.com/qbmille/trivia-api/internal/cache"
	"github.com/qbmille/trivia-api/internal/config"
	"github.com/qbmille/trivia-api/internal/db"
	"github.com/qbmille/trivia-api/internal/logger"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	// The cache is optional. A missing Redis address just means every
	// read goes to Postgres.
	catalogCache := cache.New(conf.Redis)

	s := api.NewServer(conf, postgresDB, catalogCache)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
