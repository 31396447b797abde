package services

import (
	"context"
	"time"

	"visionflow/internal/domain/waitlist"
	"visionflow/internal/repository"

	"github.com/google/uuid"
)

type WaitlistService struct {
	repo repository.WaitlistRepository
}

func NewWaitlistService(repo repository.WaitlistRepository) *WaitlistService {
	return &WaitlistService{repo: repo}
}

// Join stores a signup when the address is present and well-formed.
// The public contract for this route declares no failure codes, so the
// handler treats a returned error as log-only.
func (s *WaitlistService) Join(ctx context.Context, email string) error {
	if !validEmail(email) {
		return nil
	}
	return s.repo.Create(ctx, &waitlist.Entry{
		ID:        uuid.New(),
		Email:     email,
		CreatedAt: time.Now(),
	})
}
