package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
)

// EventQuery holds the filters and paging for a detailed event listing.
// Zero-valued filters impose no constraint; supplied filters are conjunctive.
type EventQuery struct {
	Type  domain.EventType
	Start *time.Time
	End   *time.Time
	Page  int64 // 1-indexed
	Limit int64
}

// RefCount is a per-reference event count produced by grouping view events.
type RefCount struct {
	ID    bson.ObjectID
	Count int64
}

// DayCount is an event count for one calendar day (UTC, "2006-01-02").
type DayCount struct {
	Date  string
	Count int64
}

// AnalyticsRepository stores and aggregates analytics events. The event
// collection is append-only: there are no update or delete operations.
type AnalyticsRepository interface {
	// Insert appends a single event and returns its store-assigned ID.
	Insert(ctx context.Context, event *domain.AnalyticsEvent) (bson.ObjectID, error)

	// CountByType counts events of the given type created at or after since.
	CountByType(ctx context.Context, eventType domain.EventType, since time.Time) (int64, error)

	// CountRefs groups events of the given type by their entity reference
	// (projectId for project_view, blogId for blog_view) and returns per-
	// reference counts sorted by count descending, reference ascending.
	CountRefs(ctx context.Context, eventType domain.EventType, since time.Time) ([]RefCount, error)

	// CountByDay buckets events of the given types by calendar day.
	// Buckets are sorted by date ascending; empty days are omitted.
	CountByDay(ctx context.Context, eventTypes []domain.EventType, since time.Time) ([]DayCount, error)

	// Find returns one page of events matching the query, newest first,
	// along with the total count of matching events.
	Find(ctx context.Context, query EventQuery) ([]domain.AnalyticsEvent, int64, error)
}

// ProfileRepository stores the singleton profile document.
type ProfileRepository interface {
	Get(ctx context.Context) (*domain.Profile, error)
	GetVisible(ctx context.Context) (*domain.Profile, error)

	// Upsert replaces the singleton profile, creating it if absent.
	Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error)

	// SetResumeURL updates only the resume URL, creating the profile if absent.
	SetResumeURL(ctx context.Context, url string) (*domain.Profile, error)
}

// SkillRepository stores skill entries.
type SkillRepository interface {
	List(ctx context.Context, visibleOnly bool) ([]domain.Skill, error)
	Insert(ctx context.Context, skill *domain.Skill) (*domain.Skill, error)
	Update(ctx context.Context, id bson.ObjectID, skill *domain.Skill) (*domain.Skill, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	SetOrder(ctx context.Context, id bson.ObjectID, order int) error
}

// ExperienceRepository stores career timeline entries.
type ExperienceRepository interface {
	List(ctx context.Context, visibleOnly bool, expType domain.ExperienceType) ([]domain.Experience, error)
	Get(ctx context.Context, id bson.ObjectID) (*domain.Experience, error)
	Insert(ctx context.Context, exp *domain.Experience) (*domain.Experience, error)
	Update(ctx context.Context, id bson.ObjectID, exp *domain.Experience) (*domain.Experience, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

// BlogQuery holds the filters and paging for listing blog posts.
type BlogQuery struct {
	PublishedOnly bool
	Category      string
	Tag           string
	Search        string
	Page          int64 // 1-indexed
	Limit         int64
}

// BlogRepository stores blog posts.
type BlogRepository interface {
	// List returns one page of posts plus the total matching count. For
	// published-only queries the full content field is excluded and posts
	// are sorted by publish date descending; admin queries sort by
	// creation date descending.
	List(ctx context.Context, query BlogQuery) ([]domain.BlogPost, int64, error)
	Get(ctx context.Context, id bson.ObjectID) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error)
	SlugExists(ctx context.Context, slug string, excludeID *bson.ObjectID) (bool, error)
	Insert(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error)
	Update(ctx context.Context, id bson.ObjectID, post *domain.BlogPost) (*domain.BlogPost, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	IncrementViews(ctx context.Context, id bson.ObjectID) error
	IncrementLikes(ctx context.Context, id bson.ObjectID) (int64, error)
	CountPublished(ctx context.Context) (int64, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	DistinctTags(ctx context.Context) ([]string, error)

	// TitlesByIDs resolves post titles for the given IDs. Unknown IDs are
	// simply absent from the result, never an error.
	TitlesByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]string, error)
}

// ProjectRepository stores portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context, visibleOnly bool) ([]domain.Project, error)
	Get(ctx context.Context, id bson.ObjectID) (*domain.Project, error)
	Insert(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, id bson.ObjectID, project *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	Count(ctx context.Context) (int64, error)
	TitlesByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]string, error)
}

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	Insert(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
	List(ctx context.Context) ([]domain.ContactMessage, error)
	MarkRead(ctx context.Context, id bson.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

// UserRepository stores admin accounts.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Count(ctx context.Context) (int64, error)
	Insert(ctx context.Context, user *domain.User) error
}
