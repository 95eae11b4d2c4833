package service

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository"
)

// SkillService manages skill entries.
type SkillService struct {
	skills repository.SkillRepository
	log    *zap.Logger
}

// NewSkillService creates a new skill service.
func NewSkillService(skills repository.SkillRepository, log *zap.Logger) *SkillService {
	return &SkillService{skills: skills, log: log}
}

func validateSkill(skill *domain.Skill) error {
	if !skill.Category.Valid() {
		return fmt.Errorf("%w: unknown skill category %q", domain.ErrValidation, skill.Category)
	}
	if skill.Proficiency < 1 || skill.Proficiency > 100 {
		return fmt.Errorf("%w: proficiency must be between 1 and 100", domain.ErrValidation)
	}
	return nil
}

// List returns skills, optionally restricted to visible ones.
func (s *SkillService) List(ctx context.Context, visibleOnly bool) ([]domain.Skill, error) {
	return s.skills.List(ctx, visibleOnly)
}

// Grouped returns visible skills grouped by category.
func (s *SkillService) Grouped(ctx context.Context) (map[domain.SkillCategory][]domain.Skill, error) {
	skills, err := s.skills.List(ctx, true)
	if err != nil {
		return nil, err
	}

	grouped := make(map[domain.SkillCategory][]domain.Skill)
	for _, skill := range skills {
		grouped[skill.Category] = append(grouped[skill.Category], skill)
	}
	return grouped, nil
}

// Create stores a new skill.
func (s *SkillService) Create(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	if err := validateSkill(skill); err != nil {
		return nil, err
	}
	return s.skills.Insert(ctx, skill)
}

// Update replaces an existing skill.
func (s *SkillService) Update(ctx context.Context, id string, skill *domain.Skill) (*domain.Skill, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	if err := validateSkill(skill); err != nil {
		return nil, err
	}
	return s.skills.Update(ctx, oid, skill)
}

// Delete removes a skill.
func (s *SkillService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.skills.Delete(ctx, oid)
}

// Reorder applies a bulk display order update.
func (s *SkillService) Reorder(ctx context.Context, items []dto.SkillOrderItem) error {
	for _, item := range items {
		oid, err := parseObjectID(item.ID)
		if err != nil {
			return err
		}
		if err := s.skills.SetOrder(ctx, oid, item.Order); err != nil {
			return fmt.Errorf("failed to reorder skill %s: %w", item.ID, err)
		}
	}
	return nil
}

// parseObjectID converts a hex path parameter into an ObjectID, mapping
// malformed input to a validation error.
func parseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: invalid id %q", domain.ErrValidation, id)
	}
	return oid, nil
}
