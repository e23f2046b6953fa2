package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"filmorate/internal/domain"
)

// ReferenceRepository reads the static genre and MPA lookup tables. A
// missing id is a reference lookup failure, not a validation failure.
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) Genres(ctx context.Context) ([]domain.Genre, error) {
	var rows []genreModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	genres := make([]domain.Genre, len(rows))
	for i, row := range rows {
		genres[i] = domain.Genre{ID: row.ID, Name: row.Name}
	}
	return genres, nil
}

func (r *ReferenceRepository) GenreByID(ctx context.Context, id int64) (*domain.Genre, error) {
	var row genreModel
	tx := r.db.WithContext(ctx).First(&row, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, &domain.ReferenceNotFoundError{Kind: domain.KindGenre, ID: id}
		}
		return nil, tx.Error
	}
	return &domain.Genre{ID: row.ID, Name: row.Name}, nil
}

func (r *ReferenceRepository) MpaRatings(ctx context.Context) ([]domain.Mpa, error) {
	var rows []mpaModel
	if err := r.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, err
	}
	ratings := make([]domain.Mpa, len(rows))
	for i, row := range rows {
		ratings[i] = domain.Mpa{ID: row.ID, Name: row.Name}
	}
	return ratings, nil
}

func (r *ReferenceRepository) MpaByID(ctx context.Context, id int64) (*domain.Mpa, error) {
	var row mpaModel
	tx := r.db.WithContext(ctx).First(&row, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, &domain.ReferenceNotFoundError{Kind: domain.KindMpa, ID: id}
		}
		return nil, tx.Error
	}
	return &domain.Mpa{ID: row.ID, Name: row.Name}, nil
}
