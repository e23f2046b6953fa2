package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"filmorate/internal/config"
	"filmorate/internal/database"
	"filmorate/internal/domain"
	"filmorate/internal/modules/film"
	"filmorate/internal/modules/user"
	"filmorate/internal/repository"
)

// seed wipes the working tables and loads a small demo dataset through
// the regular services, so everything passes the same validation as
// API traffic. Reference tables are seeded but never wiped.
func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := repository.SeedReferenceData(db); err != nil {
		log.Fatal("Reference seed failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM liked_users")
	db.Exec("DELETE FROM friends")
	db.Exec("DELETE FROM film_genres")
	db.Exec("DELETE FROM films")
	db.Exec("DELETE FROM users")

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	filmRepo := repository.NewFilmRepository(db)
	userRepo := repository.NewUserRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	friendRepo := repository.NewFriendshipRepository(db)
	refRepo := repository.NewReferenceRepository(db)

	films := film.NewService(filmRepo, likeRepo, userRepo, refRepo, logger)
	users := user.NewService(userRepo, friendRepo, logger)

	ctx := context.Background()

	log.Println("Creating users...")
	demoUsers := []domain.User{
		{Email: "asel@mail.kz", Login: "asel", Name: "Асель", Birthday: domain.NewDate(1995, time.March, 12)},
		{Email: "bekzat@gmail.com", Login: "bekzat", Birthday: domain.NewDate(1990, time.July, 1)},
		{Email: "dina@yandex.kz", Login: "dina", Name: "Дина", Birthday: domain.NewDate(1988, time.November, 23)},
	}
	created := make([]*domain.User, 0, len(demoUsers))
	for _, u := range demoUsers {
		saved, err := users.Create(ctx, u)
		if err != nil {
			log.Fatal("user seed failed:", err)
		}
		created = append(created, saved)
	}

	log.Println("Creating films...")
	demoFilms := []domain.Film{
		{
			Name:        "Интерстеллар",
			Description: "Экипаж исследует пространственно-временной тоннель",
			ReleaseDate: domain.NewDate(2014, time.November, 6),
			Duration:    169,
			Mpa:         domain.Mpa{ID: 3},
			Genres:      []domain.Genre{{ID: 2}, {ID: 4}},
		},
		{
			Name:        "Брат",
			Description: "Данила Багров возвращается с войны",
			ReleaseDate: domain.NewDate(1997, time.December, 12),
			Duration:    100,
			Mpa:         domain.Mpa{ID: 4},
			Genres:      []domain.Genre{{ID: 2}, {ID: 6}},
		},
		{
			Name:        "Ну, погоди!",
			Description: "Волк безуспешно пытается поймать зайца",
			ReleaseDate: domain.NewDate(1969, time.June, 14),
			Duration:    10,
			Mpa:         domain.Mpa{ID: 1},
			Genres:      []domain.Genre{{ID: 1}, {ID: 3}},
		},
	}
	savedFilms := make([]*domain.Film, 0, len(demoFilms))
	for _, f := range demoFilms {
		saved, err := films.Create(ctx, f)
		if err != nil {
			log.Fatal("film seed failed:", err)
		}
		savedFilms = append(savedFilms, saved)
	}

	log.Println("Adding likes and friendships...")
	likes := []struct{ user, film int }{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1},
		{2, 2},
	}
	for _, l := range likes {
		if _, err := films.AddLike(ctx, savedFilms[l.film].ID, created[l.user].ID); err != nil {
			log.Fatal("like seed failed:", err)
		}
	}
	if err := users.AddFriend(ctx, created[0].ID, created[1].ID); err != nil {
		log.Fatal("friendship seed failed:", err)
	}
	if err := users.AddFriend(ctx, created[1].ID, created[2].ID); err != nil {
		log.Fatal("friendship seed failed:", err)
	}

	log.Println("Seed complete:",
		len(created), "users,", len(savedFilms), "films")
}
