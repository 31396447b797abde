package repository

import (
	"context"

	"visionflow/internal/domain/favorite"

	"gorm.io/gorm"
)

type PostgresFavoriteRepository struct {
	db *gorm.DB
}

func NewFavoriteRepository(db *gorm.DB) FavoriteRepository {
	return &PostgresFavoriteRepository{db: db}
}

func (r *PostgresFavoriteRepository) Create(ctx context.Context, f *favorite.Favorite) error {
	if err := r.db.WithContext(ctx).Create(f).Error; err != nil {
		return tagStoreError(err)
	}
	return nil
}

func (r *PostgresFavoriteRepository) ListByEmail(ctx context.Context, email string) ([]favorite.Favorite, error) {
	var favorites []favorite.Favorite
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at ASC").
		Find(&favorites).Error
	if err != nil {
		return nil, tagStoreError(err)
	}
	return favorites, nil
}

// DeleteByEmailAndQuestion removes every pair matching email+question.
// Deleting something that is not there is not an error.
func (r *PostgresFavoriteRepository) DeleteByEmailAndQuestion(ctx context.Context, email, question string) error {
	err := r.db.WithContext(ctx).
		Delete(&favorite.Favorite{}, "email = ? AND question = ?", email, question).Error
	if err != nil {
		return tagStoreError(err)
	}
	return nil
}

func (r *PostgresFavoriteRepository) DeleteByEmail(ctx context.Context, email string) error {
	err := r.db.WithContext(ctx).
		Delete(&favorite.Favorite{}, "email = ?", email).Error
	if err != nil {
		return tagStoreError(err)
	}
	return nil
}
