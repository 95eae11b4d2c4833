package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Project is a portfolio project entry. Its title is what the analytics
// dashboard joins against when listing top viewed projects.
type Project struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title        string        `bson:"title" json:"title" binding:"required"`
	Description  string        `bson:"description" json:"description" binding:"required"`
	Image        string        `bson:"image,omitempty" json:"image,omitempty"`
	Technologies []string      `bson:"technologies,omitempty" json:"technologies,omitempty"`
	LiveURL      string        `bson:"liveUrl,omitempty" json:"liveUrl,omitempty"`
	GitHubURL    string        `bson:"githubUrl,omitempty" json:"githubUrl,omitempty"`
	IsFeatured   bool          `bson:"isFeatured" json:"isFeatured"`
	IsVisible    bool          `bson:"isVisible" json:"isVisible"`
	Order        int           `bson:"order" json:"order"`
	CreatedAt    time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt    time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
