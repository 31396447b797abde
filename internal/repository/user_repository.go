package repository

import (
	"context"
	"errors"

	"visionflow/internal/domain/user"
	vferrors "visionflow/pkg/errors"

	"gorm.io/gorm"
)

type PostgresUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &PostgresUserRepository{db: db}
}

// Create inserts the user. A unique violation on the email column maps to
// ErrUserExists so concurrent registrations that slip past the existence
// check still resolve to the same conflict outcome.
func (r *PostgresUserRepository) Create(ctx context.Context, u *user.User) error {
	res := r.db.WithContext(ctx).Create(u)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return vferrors.ErrUserExists
		}
		return tagStoreError(res.Error)
	}
	return nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	var u user.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, vferrors.ErrUserNotFound
		}
		return user.User{}, tagStoreError(err)
	}
	return u, nil
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&user.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, tagStoreError(err)
	}
	return count > 0, nil
}
