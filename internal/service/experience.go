package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository"
)

// ExperienceService manages career timeline entries.
type ExperienceService struct {
	experiences repository.ExperienceRepository
	log         *zap.Logger
}

// NewExperienceService creates a new experience service.
func NewExperienceService(experiences repository.ExperienceRepository, log *zap.Logger) *ExperienceService {
	return &ExperienceService{experiences: experiences, log: log}
}

func validateExperience(exp *domain.Experience) error {
	if exp.Type == "" {
		exp.Type = domain.ExperienceWork
	}
	if !exp.Type.Valid() {
		return fmt.Errorf("%w: unknown experience type %q", domain.ErrValidation, exp.Type)
	}
	if exp.EndDate != nil && exp.EndDate.Before(exp.StartDate) {
		return fmt.Errorf("%w: endDate must not be before startDate", domain.ErrValidation)
	}
	// A current position has no end date.
	if exp.IsCurrent {
		exp.EndDate = nil
	}
	return nil
}

// List returns timeline entries, optionally filtered by type.
func (s *ExperienceService) List(ctx context.Context, visibleOnly bool, expType string) ([]domain.Experience, error) {
	var t domain.ExperienceType
	if expType != "" {
		t = domain.ExperienceType(expType)
		if !t.Valid() {
			return nil, fmt.Errorf("%w: unknown experience type %q", domain.ErrValidation, expType)
		}
	}
	return s.experiences.List(ctx, visibleOnly, t)
}

// Grouped returns visible entries grouped by type.
func (s *ExperienceService) Grouped(ctx context.Context) (map[domain.ExperienceType][]domain.Experience, error) {
	entries, err := s.experiences.List(ctx, true, "")
	if err != nil {
		return nil, err
	}

	grouped := make(map[domain.ExperienceType][]domain.Experience)
	for _, entry := range entries {
		grouped[entry.Type] = append(grouped[entry.Type], entry)
	}
	return grouped, nil
}

// Get returns one entry by ID.
func (s *ExperienceService) Get(ctx context.Context, id string) (*domain.Experience, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.experiences.Get(ctx, oid)
}

// Create stores a new timeline entry.
func (s *ExperienceService) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	if err := validateExperience(exp); err != nil {
		return nil, err
	}
	return s.experiences.Insert(ctx, exp)
}

// Update replaces an existing entry.
func (s *ExperienceService) Update(ctx context.Context, id string, exp *domain.Experience) (*domain.Experience, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if err := validateExperience(exp); err != nil {
		return nil, err
	}
	return s.experiences.Update(ctx, oid, exp)
}

// Delete removes an entry.
func (s *ExperienceService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.experiences.Delete(ctx, oid)
}
