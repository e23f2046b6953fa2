package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"filmorate/internal/config"
	"filmorate/internal/database"
	"filmorate/internal/middleware"
	"filmorate/internal/modules/film"
	"filmorate/internal/modules/reference"
	"filmorate/internal/modules/user"
	"filmorate/internal/repository"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal(err)
	}
	if err := repository.SeedReferenceData(db); err != nil {
		log.Fatal(err)
	}

	filmRepo := repository.NewFilmRepository(db)
	userRepo := repository.NewUserRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	friendRepo := repository.NewFriendshipRepository(db)
	refRepo := repository.NewReferenceRepository(db)

	filmService := film.NewService(filmRepo, likeRepo, userRepo, refRepo, logger)
	filmHandler := film.NewHandler(filmService)

	userService := user.NewService(userRepo, friendRepo, logger)
	userHandler := user.NewHandler(userService)

	refHandler := reference.NewHandler(refRepo)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	root := r.Group("/")
	{
		filmHandler.RegisterRoutes(root)
		userHandler.RegisterRoutes(root)
		refHandler.RegisterRoutes(root)
	}

	logger.Info("starting server", slog.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
