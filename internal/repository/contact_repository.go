package repository

import (
	"context"

	"visionflow/internal/domain/contact"
	"visionflow/internal/domain/waitlist"

	"gorm.io/gorm"
)

type PostgresContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &PostgresContactRepository{db: db}
}

func (r *PostgresContactRepository) Create(ctx context.Context, s *contact.Submission) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		return tagStoreError(err)
	}
	return nil
}

type PostgresWaitlistRepository struct {
	db *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) WaitlistRepository {
	return &PostgresWaitlistRepository{db: db}
}

// Create inserts a waitlist entry. Signing up twice is tolerated.
func (r *PostgresWaitlistRepository) Create(ctx context.Context, e *waitlist.Entry) error {
	err := r.db.WithContext(ctx).Create(e).Error
	if err != nil {
		if isUniqueViolation(err) {
			return nil
		}
		return tagStoreError(err)
	}
	return nil
}
