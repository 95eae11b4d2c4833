package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository"
)

// ContactService manages contact form submissions.
type ContactService struct {
	contacts repository.ContactRepository
	log      *zap.Logger
}

// NewContactService creates a new contact service.
func NewContactService(contacts repository.ContactRepository, log *zap.Logger) *ContactService {
	return &ContactService{contacts: contacts, log: log}
}

// Submit stores a public contact form submission.
func (s *ContactService) Submit(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	msg.IsRead = false
	stored, err := s.contacts.Insert(ctx, msg)
	if err != nil {
		return nil, err
	}

	s.log.Info("contact message received",
		zap.String("id", stored.ID.Hex()),
		zap.String("subject", stored.Subject))
	return stored, nil
}

// List returns all messages, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.contacts.List(ctx)
}

// MarkRead flags a message as read.
func (s *ContactService) MarkRead(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.contacts.MarkRead(ctx, oid)
}
