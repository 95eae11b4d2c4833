package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ExperienceType distinguishes the timeline sections.
type ExperienceType string

const (
	ExperienceWork          ExperienceType = "work"
	ExperienceEducation     ExperienceType = "education"
	ExperienceVolunteer     ExperienceType = "volunteer"
	ExperienceCertification ExperienceType = "certification"
)

// Valid reports whether t is a known experience type.
func (t ExperienceType) Valid() bool {
	switch t {
	case ExperienceWork, ExperienceEducation, ExperienceVolunteer, ExperienceCertification:
		return true
	}
	return false
}

// Experience is one entry on the career timeline. EndDate is nil for a
// current position.
type Experience struct {
	ID           bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Title        string         `bson:"title" json:"title" binding:"required"`
	Company      string         `bson:"company" json:"company" binding:"required"`
	Location     string         `bson:"location,omitempty" json:"location,omitempty"`
	StartDate    time.Time      `bson:"startDate" json:"startDate" binding:"required"`
	EndDate      *time.Time     `bson:"endDate,omitempty" json:"endDate,omitempty"`
	IsCurrent    bool           `bson:"isCurrent" json:"isCurrent"`
	Description  string         `bson:"description" json:"description" binding:"required"`
	Technologies []string       `bson:"technologies,omitempty" json:"technologies,omitempty"`
	Achievements []string       `bson:"achievements,omitempty" json:"achievements,omitempty"`
	Type         ExperienceType `bson:"type" json:"type"`
	IsVisible    bool           `bson:"isVisible" json:"isVisible"`
	Order        int            `bson:"order" json:"order"`
	CreatedAt    time.Time      `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time      `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
