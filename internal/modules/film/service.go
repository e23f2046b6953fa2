package film

import (
	"context"
	"log/slog"

	"filmorate/internal/domain"
)

// DefaultPopularCount is used when the popular-films query omits count.
const DefaultPopularCount = 10

type Service struct {
	films  FilmRepository
	likes  LikeRepository
	users  UserGate
	refs   ReferenceRepository
	logger *slog.Logger
}

func NewService(films FilmRepository, likes LikeRepository, users UserGate, refs ReferenceRepository, logger *slog.Logger) *Service {
	return &Service{films: films, likes: likes, users: users, refs: refs, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]domain.Film, error) {
	return s.films.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Film, error) {
	if id <= 0 {
		return nil, &domain.ConditionsNotMetError{Detail: "film id must be a positive number"}
	}
	return s.films.FindByID(ctx, id)
}

// Create validates the draft, resolves its MPA and genre ids against
// the reference tables, and persists it. The returned film carries the
// assigned id and resolved reference names.
func (s *Service) Create(ctx context.Context, draft domain.Film) (*domain.Film, error) {
	if err := validateFilm(&draft); err != nil {
		return nil, err
	}
	if err := s.resolveReferences(ctx, &draft); err != nil {
		return nil, err
	}
	if err := s.films.Create(ctx, &draft); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "film created",
		slog.Int64("id", draft.ID), slog.String("name", draft.Name))
	return &draft, nil
}

// Update replaces all mutable fields of an existing film.
func (s *Service) Update(ctx context.Context, draft domain.Film) (*domain.Film, error) {
	if draft.ID <= 0 {
		return nil, &domain.ConditionsNotMetError{Detail: "film id must be specified"}
	}
	if err := validateFilm(&draft); err != nil {
		return nil, err
	}
	if err := s.resolveReferences(ctx, &draft); err != nil {
		return nil, err
	}
	if err := s.films.Update(ctx, &draft); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "film updated", slog.Int64("id", draft.ID))
	return s.films.FindByID(ctx, draft.ID)
}

// AddLike registers a like after resolving both ids. A second like
// from the same user fails with ConditionsNotMet.
func (s *Service) AddLike(ctx context.Context, filmID, userID int64) (*domain.Film, error) {
	if _, err := s.films.FindByID(ctx, filmID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.likes.Add(ctx, userID, filmID); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "like added",
		slog.Int64("film_id", filmID), slog.Int64("user_id", userID))
	return s.films.FindByID(ctx, filmID)
}

// RemoveLike deletes a like. Removing a like that does not exist fails
// with ConditionsNotMet, mirroring AddLike.
func (s *Service) RemoveLike(ctx context.Context, filmID, userID int64) (*domain.Film, error) {
	if _, err := s.films.FindByID(ctx, filmID); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.likes.Remove(ctx, userID, filmID); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, "like removed",
		slog.Int64("film_id", filmID), slog.Int64("user_id", userID))
	return s.films.FindByID(ctx, filmID)
}

// Popular returns the count most-liked films. Zero or negative counts
// yield an empty result; ties are broken by ascending film id so the
// ranking is stable. The like-id sets of the returned films are empty.
func (s *Service) Popular(ctx context.Context, count int) ([]domain.Film, error) {
	if count <= 0 {
		return []domain.Film{}, nil
	}
	return s.films.MostLiked(ctx, count)
}

// resolveReferences replaces bare MPA and genre ids with full lookup
// records. Duplicate genre ids collapse to the first occurrence,
// keeping insertion order.
func (s *Service) resolveReferences(ctx context.Context, f *domain.Film) error {
	mpa, err := s.refs.MpaByID(ctx, f.Mpa.ID)
	if err != nil {
		return err
	}
	f.Mpa = *mpa

	seen := make(map[int64]bool, len(f.Genres))
	resolved := make([]domain.Genre, 0, len(f.Genres))
	for _, g := range f.Genres {
		if seen[g.ID] {
			continue
		}
		seen[g.ID] = true
		genre, err := s.refs.GenreByID(ctx, g.ID)
		if err != nil {
			return err
		}
		resolved = append(resolved, *genre)
	}
	f.Genres = resolved
	return nil
}
