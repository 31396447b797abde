package repository

import (
	"context"

	"visionflow/internal/domain/contact"
	"visionflow/internal/domain/favorite"
	"visionflow/internal/domain/user"
	"visionflow/internal/domain/waitlist"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	GetByEmail(ctx context.Context, email string) (user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type FavoriteRepository interface {
	Create(ctx context.Context, f *favorite.Favorite) error
	ListByEmail(ctx context.Context, email string) ([]favorite.Favorite, error)
	DeleteByEmailAndQuestion(ctx context.Context, email, question string) error
	DeleteByEmail(ctx context.Context, email string) error
}

type ContactRepository interface {
	Create(ctx context.Context, s *contact.Submission) error
}

type WaitlistRepository interface {
	Create(ctx context.Context, e *waitlist.Entry) error
}
