package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Availability describes whether the portfolio owner is open to new work.
type Availability string

const (
	AvailabilityAvailable    Availability = "available"
	AvailabilityBusy         Availability = "busy"
	AvailabilityNotAvailable Availability = "not-available"
)

// Valid reports whether a is a known availability state.
func (a Availability) Valid() bool {
	switch a {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityNotAvailable:
		return true
	}
	return false
}

// SocialLinks holds the profile's external presence URLs.
type SocialLinks struct {
	GitHub    string `bson:"github,omitempty" json:"github,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	YouTube   string `bson:"youtube,omitempty" json:"youtube,omitempty"`
	Portfolio string `bson:"portfolio,omitempty" json:"portfolio,omitempty"`
}

// Profile is the single owner profile document. The collection holds at most
// one profile; writes go through an explicit upsert so "first document"
// lookups never race with creation.
type Profile struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string        `bson:"fullName" json:"fullName" binding:"required"`
	Title        string        `bson:"title" json:"title" binding:"required"`
	Bio          string        `bson:"bio" json:"bio" binding:"required"`
	Email        string        `bson:"email" json:"email,omitempty" binding:"required"`
	Phone        string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Location     string        `bson:"location,omitempty" json:"location,omitempty"`
	Website      string        `bson:"website,omitempty" json:"website,omitempty"`
	ProfileImage string        `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	ResumeURL    string        `bson:"resumeUrl,omitempty" json:"resumeUrl,omitempty"`

	SocialLinks SocialLinks `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`

	YearsOfExperience int          `bson:"yearsOfExperience,omitempty" json:"yearsOfExperience,omitempty"`
	CurrentPosition   string       `bson:"currentPosition,omitempty" json:"currentPosition,omitempty"`
	CurrentCompany    string       `bson:"currentCompany,omitempty" json:"currentCompany,omitempty"`
	Availability      Availability `bson:"availability,omitempty" json:"availability,omitempty"`

	SEOTitle       string   `bson:"seoTitle,omitempty" json:"seoTitle,omitempty"`
	SEODescription string   `bson:"seoDescription,omitempty" json:"seoDescription,omitempty"`
	SEOKeywords    []string `bson:"seoKeywords,omitempty" json:"seoKeywords,omitempty"`

	IsVisible    bool `bson:"isVisible" json:"isVisible"`
	AllowContact bool `bson:"allowContact" json:"allowContact"`
	ShowEmail    bool `bson:"showEmail" json:"showEmail"`
	ShowPhone    bool `bson:"showPhone" json:"showPhone"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// PublicView returns a copy with contact fields stripped according to the
// profile's own visibility toggles.
func (p Profile) PublicView() Profile {
	if !p.ShowEmail {
		p.Email = ""
	}
	if !p.ShowPhone {
		p.Phone = ""
	}
	return p
}
