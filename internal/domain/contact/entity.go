package contact

import (
	"time"

	"github.com/google/uuid"
)

// Submission is a contact-form row. Write-only: there is no read path.
type Submission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Name      string    `json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func (Submission) TableName() string {
	return "contact_messages"
}
