package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"filmorate/internal/domain"
)

type FilmRepository struct {
	db *gorm.DB
}

func NewFilmRepository(db *gorm.DB) *FilmRepository {
	return &FilmRepository{db: db}
}

// FindAll returns every film, hydrated with genres, MPA and like data,
// ordered by id.
func (r *FilmRepository) FindAll(ctx context.Context) ([]domain.Film, error) {
	var rows []filmModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return r.hydrate(ctx, rows)
}

// FindByID returns one film or domain.NotFoundError.
func (r *FilmRepository) FindByID(ctx context.Context, id int64) (*domain.Film, error) {
	var row filmModel
	tx := r.db.WithContext(ctx).First(&row, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, &domain.NotFoundError{Kind: domain.KindFilm, ID: id}
		}
		return nil, tx.Error
	}
	films, err := r.hydrate(ctx, []filmModel{row})
	if err != nil {
		return nil, err
	}
	return &films[0], nil
}

// Create inserts a film and its genre links in one transaction,
// assigning max(id)+1. The film's ID is set on success.
func (r *FilmRepository) Create(ctx context.Context, f *domain.Film) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		id, err := nextID(tx, &filmModel{})
		if err != nil {
			return err
		}
		row := filmModel{
			ID:          id,
			Name:        f.Name,
			Description: f.Description,
			ReleaseDate: f.ReleaseDate,
			Duration:    f.Duration,
			RatingID:    f.Mpa.ID,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		if err := insertGenreLinks(tx, id, f.Genres); err != nil {
			return err
		}
		f.ID = id
		return nil
	})
}

// Update replaces every mutable field of an existing film, including
// its genre links. Returns domain.NotFoundError for unknown ids.
func (r *FilmRepository) Update(ctx context.Context, f *domain.Film) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing filmModel
		if err := tx.First(&existing, f.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &domain.NotFoundError{Kind: domain.KindFilm, ID: f.ID}
			}
			return err
		}
		row := filmModel{
			ID:          f.ID,
			Name:        f.Name,
			Description: f.Description,
			ReleaseDate: f.ReleaseDate,
			Duration:    f.Duration,
			RatingID:    f.Mpa.ID,
		}
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		if err := tx.Where("film_id = ?", f.ID).Delete(&filmGenreModel{}).Error; err != nil {
			return err
		}
		return insertGenreLinks(tx, f.ID, f.Genres)
	})
}

// MostLiked returns the count most-liked films, like count descending,
// ties broken by ascending film id so repeated calls are stable. The
// films are fully hydrated except for the like-id set, which stays
// empty on ranking output.
func (r *FilmRepository) MostLiked(ctx context.Context, count int) ([]domain.Film, error) {
	if count <= 0 {
		return []domain.Film{}, nil
	}
	var rows []filmModel
	err := r.db.WithContext(ctx).
		Model(&filmModel{}).
		Select("films.*").
		Joins("LEFT JOIN liked_users ON liked_users.film_id = films.id").
		Group("films.id").
		Order("COUNT(liked_users.user_id) DESC, films.id ASC").
		Limit(count).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	films, err := r.hydrate(ctx, rows)
	if err != nil {
		return nil, err
	}
	for i := range films {
		films[i].LikedBy = nil
	}
	return films, nil
}

func insertGenreLinks(tx *gorm.DB, filmID int64, genres []domain.Genre) error {
	if len(genres) == 0 {
		return nil
	}
	links := make([]filmGenreModel, len(genres))
	for i, g := range genres {
		links[i] = filmGenreModel{FilmID: filmID, GenreID: g.ID, Position: i}
	}
	return tx.Create(&links).Error
}

// hydrate attaches genres (in stored order), MPA names, like ids and
// like counts to a batch of film rows with one query per relation.
func (r *FilmRepository) hydrate(ctx context.Context, rows []filmModel) ([]domain.Film, error) {
	films := make([]domain.Film, len(rows))
	if len(rows) == 0 {
		return films, nil
	}

	ids := make([]int64, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
		films[i] = domain.Film{
			ID:          row.ID,
			Name:        row.Name,
			Description: row.Description,
			ReleaseDate: row.ReleaseDate,
			Duration:    row.Duration,
			Mpa:         domain.Mpa{ID: row.RatingID},
			Genres:      []domain.Genre{},
		}
	}

	type genreRow struct {
		FilmID int64
		ID     int64
		Name   string
	}
	var genreRows []genreRow
	err := r.db.WithContext(ctx).
		Table("film_genres").
		Select("film_genres.film_id, genres.id, genres.name").
		Joins("JOIN genres ON genres.id = film_genres.genre_id").
		Where("film_genres.film_id IN ?", ids).
		Order("film_genres.film_id, film_genres.position").
		Scan(&genreRows).Error
	if err != nil {
		return nil, err
	}
	genresByFilm := make(map[int64][]domain.Genre)
	for _, g := range genreRows {
		genresByFilm[g.FilmID] = append(genresByFilm[g.FilmID], domain.Genre{ID: g.ID, Name: g.Name})
	}

	var likes []likeModel
	err = r.db.WithContext(ctx).
		Where("film_id IN ?", ids).
		Order("film_id, user_id").
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	likesByFilm := make(map[int64][]int64)
	for _, l := range likes {
		likesByFilm[l.FilmID] = append(likesByFilm[l.FilmID], l.UserID)
	}

	var ratings []mpaModel
	if err := r.db.WithContext(ctx).Find(&ratings).Error; err != nil {
		return nil, err
	}
	ratingNames := make(map[int64]string, len(ratings))
	for _, m := range ratings {
		ratingNames[m.ID] = m.Name
	}

	for i := range films {
		if genres, ok := genresByFilm[films[i].ID]; ok {
			films[i].Genres = genres
		}
		films[i].LikedBy = likesByFilm[films[i].ID]
		films[i].LikeCount = int64(len(films[i].LikedBy))
		films[i].Mpa.Name = ratingNames[films[i].Mpa.ID]
	}
	return films, nil
}
