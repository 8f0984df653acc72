package main

import (
	"log"

	"datecourse/internal/auth"
	"datecourse/internal/config"
	"datecourse/internal/events"
	"datecourse/internal/handler"
	"datecourse/internal/logging"
	"datecourse/internal/repository"
	"datecourse/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger, err := logging.New(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	db, err := sqlx.Connect("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	defer db.Close()
	if err := repository.Migrate(db, cfg.MigrationsGlob, logger); err != nil {
		logger.Warn("migrations incomplete", zap.Error(err))
	}

	var pub service.EventPublisher = events.Nop{}
	if cfg.AMQPURL != "" {
		p, err := events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			logger.Fatal("event publisher", zap.Error(err))
		}
		defer p.Close()
		pub = p
	}

	userRepo := repository.NewUserRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	historyRepo := repository.NewHistoryRepository(db)

	userService := service.NewUserService(userRepo)
	placeService := service.NewPlaceService(placeRepo)
	courseService := service.NewCourseService(courseRepo, placeRepo, historyRepo, pub, logger)

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger(logger))
	h := handler.NewHandler(userService, placeService, courseService, logger)
	h.Routes(router, auth.NewTokens(cfg.JWTSecret))

	logger.Info("api listening", zap.String("port", cfg.APIPort))
	if err := router.Run(":" + cfg.APIPort); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
