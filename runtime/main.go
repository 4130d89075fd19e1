package main

import (
	"os"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/pocketnative/pocketnative_api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.WithError(err).Warn("No .env file loaded")
	}

	if level, err := log.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		log.SetLevel(level)
	}

	ctx, err := context.NewCtx(
		&services.ClockService{},
		&services.RedisService{},
		&services.SqliteService{},
		&services.StorageService{},
		&services.GamificationService{},
		&services.ContentService{},
		&services.ProfileService{},
		&services.ProgressService{},
		&services.LearningService{},

		&services.HttpService{},
	)
	if err != nil {
		log.WithError(err).Fatal("Failed to configure services")
		return
	}

	if err = ctx.Run(); err != nil {
		log.WithError(err).Fatal("Service runtime exited")
		return
	}
}
