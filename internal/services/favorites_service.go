package services

import (
	"context"
	"time"

	"visionflow/internal/domain/favorite"
	"visionflow/internal/repository"
	vferrors "visionflow/pkg/errors"

	"github.com/google/uuid"
)

// FavoritesService is a thin pass-through to the favorites table; the
// only logic here is required-field checks.
type FavoritesService struct {
	repo repository.FavoriteRepository
}

func NewFavoritesService(repo repository.FavoriteRepository) *FavoritesService {
	return &FavoritesService{repo: repo}
}

func (s *FavoritesService) Save(ctx context.Context, email, question, answer string) error {
	if email == "" || question == "" {
		return vferrors.ErrInvalidInput
	}
	return s.repo.Create(ctx, &favorite.Favorite{
		ID:        uuid.New(),
		Email:     email,
		Question:  question,
		Answer:    answer,
		CreatedAt: time.Now(),
	})
}

func (s *FavoritesService) List(ctx context.Context, email string) ([]favorite.Favorite, error) {
	if email == "" {
		return nil, vferrors.ErrInvalidInput
	}
	return s.repo.ListByEmail(ctx, email)
}

func (s *FavoritesService) DeleteOne(ctx context.Context, email, question string) error {
	if email == "" || question == "" {
		return vferrors.ErrInvalidInput
	}
	return s.repo.DeleteByEmailAndQuestion(ctx, email, question)
}

func (s *FavoritesService) DeleteAll(ctx context.Context, email string) error {
	if email == "" {
		return vferrors.ErrInvalidInput
	}
	return s.repo.DeleteByEmail(ctx, email)
}
