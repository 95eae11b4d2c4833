package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// EventType identifies a tracked user action. The set is closed: the
// recorder rejects anything not listed here.
type EventType string

const (
	EventPageView       EventType = "page_view"
	EventProjectView    EventType = "project_view"
	EventBlogView       EventType = "blog_view"
	EventContactForm    EventType = "contact_form"
	EventResumeDownload EventType = "resume_download"
	EventSocialClick    EventType = "social_click"
)

var eventTypes = map[EventType]struct{}{
	EventPageView:       {},
	EventProjectView:    {},
	EventBlogView:       {},
	EventContactForm:    {},
	EventResumeDownload: {},
	EventSocialClick:    {},
}

// Valid reports whether t is a member of the closed event type set.
func (t EventType) Valid() bool {
	_, ok := eventTypes[t]
	return ok
}

// ViewEventTypes are the kinds that contribute to the daily views series.
func ViewEventTypes() []EventType {
	return []EventType{EventPageView, EventProjectView, EventBlogView}
}

// AnalyticsEvent is a single tracked action. Events are append-only: once
// inserted they are never updated or deleted by the application.
//
// ProjectID and BlogID are weak references. The referenced document may be
// deleted independently, leaving the reference dangling; aggregation must
// tolerate that and simply exclude unresolvable references from joined
// output.
type AnalyticsEvent struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type      EventType      `bson:"type" json:"type"`
	Page      string         `bson:"page,omitempty" json:"page,omitempty"`
	ProjectID *bson.ObjectID `bson:"projectId,omitempty" json:"projectId,omitempty"`
	BlogID    *bson.ObjectID `bson:"blogId,omitempty" json:"blogId,omitempty"`
	UserAgent string         `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
	IPAddress string         `bson:"ipAddress,omitempty" json:"ipAddress,omitempty"`
	Referrer  string         `bson:"referrer,omitempty" json:"referrer,omitempty"`
	SessionID string         `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Metadata  map[string]any `bson:"metadata,omitempty" json:"metadata,omitempty"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
}
