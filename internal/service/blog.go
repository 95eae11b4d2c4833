package service

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository"
)

// BlogService manages blog posts.
type BlogService struct {
	blogs repository.BlogRepository
	log   *zap.Logger
}

// NewBlogService creates a new blog service.
func NewBlogService(blogs repository.BlogRepository, log *zap.Logger) *BlogService {
	return &BlogService{blogs: blogs, log: log}
}

// List returns one page of published posts. Content is excluded from
// listings; clients fetch it per-post.
func (s *BlogService) List(ctx context.Context, req *dto.BlogListRequest) (*dto.BlogListResponse, error) {
	query := repository.BlogQuery{
		PublishedOnly: true,
		Category:      req.Category,
		Tag:           req.Tag,
		Search:        req.Search,
		Page:          req.Page,
		Limit:         req.Limit,
	}
	return s.list(ctx, query)
}

// AdminList returns one page of all posts, drafts included.
func (s *BlogService) AdminList(ctx context.Context, req *dto.AdminListRequest) (*dto.BlogListResponse, error) {
	query := repository.BlogQuery{Page: req.Page, Limit: req.Limit}
	return s.list(ctx, query)
}

func (s *BlogService) list(ctx context.Context, query repository.BlogQuery) (*dto.BlogListResponse, error) {
	if query.Page < 1 {
		query.Page = 1
	}
	if query.Limit < 1 {
		query.Limit = 10
	}

	posts, total, err := s.blogs.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return &dto.BlogListResponse{
		Blogs:       posts,
		TotalPages:  (total + query.Limit - 1) / query.Limit,
		CurrentPage: query.Page,
		Total:       total,
	}, nil
}

// Get returns one post by ID without touching its view counter.
func (s *BlogService) Get(ctx context.Context, id string) (*domain.BlogPost, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	return s.blogs.Get(ctx, oid)
}

// GetBySlug returns one published post and increments its view counter.
// The increment is best-effort: a failed bump never fails the read.
func (s *BlogService) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := s.blogs.GetBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}

	if err := s.blogs.IncrementViews(ctx, post.ID); err != nil {
		s.log.Warn("failed to increment post views",
			zap.String("id", post.ID.Hex()),
			zap.Error(err))
	} else {
		post.Views++
	}

	return post, nil
}

// prepare derives the slug, read time and publish date for a post before it
// is written. An explicit slug is kept; otherwise one is derived from the
// title. existing is nil on create.
func (s *BlogService) prepare(ctx context.Context, post *domain.BlogPost, existing *domain.BlogPost) error {
	if post.Slug == "" {
		post.Slug = domain.Slugify(post.Title)
	} else {
		post.Slug = domain.Slugify(post.Slug)
	}
	if post.Slug == "" {
		return fmt.Errorf("%w: title yields an empty slug", domain.ErrValidation)
	}

	var excludeID *bson.ObjectID
	if existing != nil {
		excludeID = &existing.ID
	}
	taken, err := s.blogs.SlugExists(ctx, post.Slug, excludeID)
	if err != nil {
		return fmt.Errorf("failed to check slug: %w", err)
	}
	if taken {
		return fmt.Errorf("%w: slug %q is already in use", domain.ErrValidation, post.Slug)
	}

	post.ReadTime = domain.EstimateReadTime(post.Content)

	// The publish date is stamped on the draft-to-published transition and
	// then kept stable across edits.
	if post.IsPublished {
		switch {
		case existing != nil && existing.PublishedAt != nil:
			post.PublishedAt = existing.PublishedAt
		case post.PublishedAt == nil:
			now := time.Now().UTC()
			post.PublishedAt = &now
		}
	} else {
		post.PublishedAt = nil
	}

	return nil
}

// Create stores a new post.
func (s *BlogService) Create(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	if err := s.prepare(ctx, post, nil); err != nil {
		return nil, err
	}
	return s.blogs.Insert(ctx, post)
}

// Update replaces an existing post. View and like counters survive the
// replacement.
func (s *BlogService) Update(ctx context.Context, id string, post *domain.BlogPost) (*domain.BlogPost, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	existing, err := s.blogs.Get(ctx, oid)
	if err != nil {
		return nil, err
	}
	if err := s.prepare(ctx, post, existing); err != nil {
		return nil, err
	}
	post.Views = existing.Views
	post.Likes = existing.Likes
	return s.blogs.Update(ctx, oid, post)
}

// Delete removes a post.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	return s.blogs.Delete(ctx, oid)
}

// Like increments the like counter and returns the new value.
func (s *BlogService) Like(ctx context.Context, id string) (int64, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return 0, err
	}
	return s.blogs.IncrementLikes(ctx, oid)
}

// Categories returns the distinct categories across published posts.
func (s *BlogService) Categories(ctx context.Context) ([]string, error) {
	return s.blogs.DistinctCategories(ctx)
}

// Tags returns the distinct tags across published posts.
func (s *BlogService) Tags(ctx context.Context) ([]string, error) {
	return s.blogs.DistinctTags(ctx)
}
