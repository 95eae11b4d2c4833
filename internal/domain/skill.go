package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SkillCategory groups skills on the public site.
type SkillCategory string

const (
	SkillFrontend SkillCategory = "Frontend"
	SkillBackend  SkillCategory = "Backend"
	SkillDatabase SkillCategory = "Database"
	SkillDevOps   SkillCategory = "DevOps"
	SkillTools    SkillCategory = "Tools"
	SkillOther    SkillCategory = "Other"
)

// Valid reports whether c is a known skill category.
func (c SkillCategory) Valid() bool {
	switch c {
	case SkillFrontend, SkillBackend, SkillDatabase, SkillDevOps, SkillTools, SkillOther:
		return true
	}
	return false
}

// Skill is a single skill entry. Proficiency is a percentage in [1, 100].
type Skill struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string        `bson:"name" json:"name" binding:"required"`
	Category    SkillCategory `bson:"category" json:"category" binding:"required"`
	Proficiency int           `bson:"proficiency" json:"proficiency" binding:"required"`
	Icon        string        `bson:"icon,omitempty" json:"icon,omitempty"`
	IsVisible   bool          `bson:"isVisible" json:"isVisible"`
	Order       int           `bson:"order" json:"order"`
	CreatedAt   time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt   time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
