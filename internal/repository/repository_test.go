package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"filmorate/internal/database"
	"filmorate/internal/domain"
)

// newTestDB opens an isolated in-memory SQLite database with the full
// schema and reference data applied.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	require.NoError(t, SeedReferenceData(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func seedUser(t *testing.T, repo *UserRepository, email, login string) *domain.User {
	t.Helper()
	u := &domain.User{
		Email:    email,
		Login:    login,
		Name:     login,
		Birthday: domain.NewDate(1990, time.May, 15),
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func seedFilm(t *testing.T, repo *FilmRepository, name string, genres ...int64) *domain.Film {
	t.Helper()
	f := &domain.Film{
		Name:        name,
		Description: "seeded for tests",
		ReleaseDate: domain.NewDate(2000, time.January, 1),
		Duration:    90,
		Mpa:         domain.Mpa{ID: 1},
	}
	for _, id := range genres {
		f.Genres = append(f.Genres, domain.Genre{ID: id})
	}
	require.NoError(t, repo.Create(context.Background(), f))
	return f
}
