package favorite

import (
	"time"

	"github.com/google/uuid"
)

// Favorite is a saved question/answer pair. Ownership is by exact email
// match; duplicates for the same user are allowed.
type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Email     string    `gorm:"index;not null" json:"email"`
	Question  string    `gorm:"not null" json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
