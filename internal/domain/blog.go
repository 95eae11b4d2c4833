package domain

import (
	"math"
	"regexp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// wordsPerMinute is the reading speed used for the estimated read time.
const wordsPerMinute = 200

var slugCleaner = regexp.MustCompile(`[^a-z0-9]+`)

// BlogPost is a single article. Slug is unique across the collection.
type BlogPost struct {
	ID             bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Title          string        `bson:"title" json:"title" binding:"required"`
	Slug           string        `bson:"slug" json:"slug"`
	Excerpt        string        `bson:"excerpt" json:"excerpt" binding:"required"`
	Content        string        `bson:"content,omitempty" json:"content,omitempty" binding:"required"`
	FeaturedImage  string        `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	Tags           []string      `bson:"tags,omitempty" json:"tags,omitempty"`
	Category       string        `bson:"category,omitempty" json:"category,omitempty"`
	IsPublished    bool          `bson:"isPublished" json:"isPublished"`
	PublishedAt    *time.Time    `bson:"publishedAt,omitempty" json:"publishedAt,omitempty"`
	ReadTime       int           `bson:"readTime,omitempty" json:"readTime,omitempty"`
	Views          int64         `bson:"views" json:"views"`
	Likes          int64         `bson:"likes" json:"likes"`
	SEOTitle       string        `bson:"seoTitle,omitempty" json:"seoTitle,omitempty"`
	SEODescription string        `bson:"seoDescription,omitempty" json:"seoDescription,omitempty"`
	CreatedAt      time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt      time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Slugify derives a URL slug from a post title: lowercase, non-alphanumerics
// collapsed to single dashes, leading and trailing dashes trimmed.
func Slugify(title string) string {
	slug := slugCleaner.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

// EstimateReadTime returns the read time in minutes for the given content,
// rounded up, assuming an average reading speed.
func EstimateReadTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) / wordsPerMinute))
}
