package film

import (
	"context"

	"filmorate/internal/domain"
)

// FilmRepository is the persistence contract for films.
type FilmRepository interface {
	FindAll(ctx context.Context) ([]domain.Film, error)
	FindByID(ctx context.Context, id int64) (*domain.Film, error)
	Create(ctx context.Context, f *domain.Film) error
	Update(ctx context.Context, f *domain.Film) error
	MostLiked(ctx context.Context, count int) ([]domain.Film, error)
}

// LikeRepository maintains the user→film like edges.
type LikeRepository interface {
	Add(ctx context.Context, userID, filmID int64) error
	Remove(ctx context.Context, userID, filmID int64) error
}

// UserGate resolves user ids so like operations can reject unknown
// users without depending on the whole user module.
type UserGate interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}

// ReferenceRepository resolves genre and MPA ids against the static
// lookup tables.
type ReferenceRepository interface {
	GenreByID(ctx context.Context, id int64) (*domain.Genre, error)
	MpaByID(ctx context.Context, id int64) (*domain.Mpa, error)
}
