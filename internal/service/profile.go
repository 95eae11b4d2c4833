package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository"
)

// ProfileService manages the singleton profile document.
type ProfileService struct {
	profiles repository.ProfileRepository
	log      *zap.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(profiles repository.ProfileRepository, log *zap.Logger) *ProfileService {
	return &ProfileService{profiles: profiles, log: log}
}

// PublicProfile returns the visible profile with contact fields stripped
// according to its visibility toggles.
func (s *ProfileService) PublicProfile(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.profiles.GetVisible(ctx)
	if err != nil {
		return nil, err
	}
	public := profile.PublicView()
	return &public, nil
}

// AdminProfile returns the full profile document.
func (s *ProfileService) AdminProfile(ctx context.Context) (*domain.Profile, error) {
	return s.profiles.Get(ctx)
}

// Save creates or replaces the profile via an explicit upsert.
func (s *ProfileService) Save(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	if profile.Availability != "" && !profile.Availability.Valid() {
		return nil, fmt.Errorf("%w: unknown availability %q", domain.ErrValidation, profile.Availability)
	}
	return s.profiles.Upsert(ctx, profile)
}

// SetResume updates the stored resume URL.
func (s *ProfileService) SetResume(ctx context.Context, url string) (*domain.Profile, error) {
	return s.profiles.SetResumeURL(ctx, url)
}

// ResumeURL returns the resume URL of the visible profile. ErrNotFound is
// returned when no visible profile exists or it has no resume.
func (s *ProfileService) ResumeURL(ctx context.Context) (string, error) {
	profile, err := s.profiles.GetVisible(ctx)
	if err != nil {
		return "", err
	}
	if profile.ResumeURL == "" {
		return "", fmt.Errorf("%w: no resume uploaded", domain.ErrNotFound)
	}
	return profile.ResumeURL, nil
}
