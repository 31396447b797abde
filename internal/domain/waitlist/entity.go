package waitlist

import (
	"time"

	"github.com/google/uuid"
)

type Entry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func (Entry) TableName() string {
	return "waitlist"
}
