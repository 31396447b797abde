package services

import (
	"context"
	"time"

	"visionflow/internal/domain/contact"
	"visionflow/internal/repository"
	vferrors "visionflow/pkg/errors"
	"visionflow/pkg/logger"

	"github.com/google/uuid"
)

type ContactService struct {
	repo repository.ContactRepository
	mail DeliverabilityChecker
	log  *logger.Logger
}

func NewContactService(repo repository.ContactRepository, mail DeliverabilityChecker, log *logger.Logger) *ContactService {
	return &ContactService{repo: repo, mail: mail, log: log}
}

// Submit validates the sender address, gates it on deliverability and
// stores the message. Nothing is written when the gate rejects.
func (s *ContactService) Submit(ctx context.Context, name, email, message string) (contact.Submission, error) {
	if !validEmail(email) {
		return contact.Submission{}, vferrors.ErrInvalidEmail
	}
	if message == "" {
		return contact.Submission{}, vferrors.ErrInvalidInput
	}

	deliverable, err := s.mail.Check(ctx, email)
	if err != nil {
		s.log.Errorf("contact: deliverability check failed: %s", err)
		return contact.Submission{}, vferrors.ErrVerificationFailed
	}
	if !deliverable {
		return contact.Submission{}, vferrors.ErrNotDeliverable
	}

	submission := contact.Submission{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(ctx, &submission); err != nil {
		return contact.Submission{}, err
	}

	return submission, nil
}
