package repository

import (
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for every table the
// repositories touch.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&mpaModel{},
		&genreModel{},
		&filmModel{},
		&filmGenreModel{},
		&userModel{},
		&friendModel{},
		&likeModel{},
	)
}

// SeedReferenceData inserts the fixed genre and MPA lookup tables if
// they are empty. The application never mutates them afterwards.
func SeedReferenceData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&genreModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		genres := []genreModel{
			{ID: 1, Name: "Комедия"},
			{ID: 2, Name: "Драма"},
			{ID: 3, Name: "Мультфильм"},
			{ID: 4, Name: "Триллер"},
			{ID: 5, Name: "Документальный"},
			{ID: 6, Name: "Боевик"},
		}
		if err := db.Create(&genres).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&mpaModel{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		ratings := []mpaModel{
			{ID: 1, Name: "G"},
			{ID: 2, Name: "PG"},
			{ID: 3, Name: "PG-13"},
			{ID: 4, Name: "R"},
			{ID: 5, Name: "NC-17"},
		}
		if err := db.Create(&ratings).Error; err != nil {
			return err
		}
	}
	return nil
}

// nextID assigns ids the way the service always has: max existing id
// plus one, starting at 1. Must run inside the insert transaction.
func nextID(tx *gorm.DB, model any) (int64, error) {
	var maxID int64
	err := tx.Model(model).Select("COALESCE(MAX(id), 0)").Scan(&maxID).Error
	if err != nil {
		return 0, err
	}
	return maxID + 1, nil
}
