package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/dto"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository"
)

func TestBlogService_Create_DerivesSlugAndReadTime(t *testing.T) {
	blogs := new(MockBlogRepository)
	svc := NewBlogService(blogs, zap.NewNop())

	blogs.On("SlugExists", mock.Anything, "hello-world-again", (*bson.ObjectID)(nil)).Return(false, nil)
	blogs.On("Insert", mock.Anything, mock.AnythingOfType("*domain.BlogPost")).
		Return(&domain.BlogPost{}, nil)

	post := &domain.BlogPost{
		Title:   "Hello, World! Again",
		Excerpt: "greeting",
		Content: strings.Repeat("word ", 450),
	}

	_, err := svc.Create(context.Background(), post)

	assert.NoError(t, err)
	assert.Equal(t, "hello-world-again", post.Slug)
	assert.Equal(t, 3, post.ReadTime) // 450 words at 200 wpm, rounded up
	assert.Nil(t, post.PublishedAt)   // still a draft
	blogs.AssertExpectations(t)
}

func TestBlogService_Create_DuplicateSlug(t *testing.T) {
	blogs := new(MockBlogRepository)
	svc := NewBlogService(blogs, zap.NewNop())

	blogs.On("SlugExists", mock.Anything, "taken", (*bson.ObjectID)(nil)).Return(true, nil)

	post := &domain.BlogPost{Title: "Taken", Excerpt: "e", Content: "c"}

	_, err := svc.Create(context.Background(), post)

	assert.ErrorIs(t, err, domain.ErrValidation)
	blogs.AssertNotCalled(t, "Insert")
}

func TestBlogService_Create_StampsPublishDate(t *testing.T) {
	blogs := new(MockBlogRepository)
	svc := NewBlogService(blogs, zap.NewNop())

	blogs.On("SlugExists", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	blogs.On("Insert", mock.Anything, mock.AnythingOfType("*domain.BlogPost")).
		Return(&domain.BlogPost{}, nil)

	post := &domain.BlogPost{Title: "Live", Excerpt: "e", Content: "c", IsPublished: true}

	_, err := svc.Create(context.Background(), post)

	assert.NoError(t, err)
	assert.NotNil(t, post.PublishedAt)
	assert.WithinDuration(t, time.Now().UTC(), *post.PublishedAt, time.Minute)
}

func TestBlogService_Update_KeepsCountersAndPublishDate(t *testing.T) {
	blogs := new(MockBlogRepository)
	svc := NewBlogService(blogs, zap.NewNop())

	id := bson.NewObjectID()
	publishedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	existing := &domain.BlogPost{
		ID:          id,
		Title:       "Old title",
		Slug:        "old-title",
		IsPublished: true,
		PublishedAt: &publishedAt,
		Views:       120,
		Likes:       14,
	}

	blogs.On("Get", mock.Anything, id).Return(existing, nil)
	blogs.On("SlugExists", mock.Anything, "new-title", &id).Return(false, nil)
	blogs.On("Update", mock.Anything, id, mock.AnythingOfType("*domain.BlogPost")).
		Return(&domain.BlogPost{}, nil)

	post := &domain.BlogPost{Title: "New title", Excerpt: "e", Content: "c", IsPublished: true}

	_, err := svc.Update(context.Background(), id.Hex(), post)

	assert.NoError(t, err)
	assert.Equal(t, int64(120), post.Views)
	assert.Equal(t, int64(14), post.Likes)
	// An edit never moves the original publish date.
	assert.Equal(t, publishedAt, *post.PublishedAt)
}

func TestBlogService_GetBySlug_IncrementsViewsBestEffort(t *testing.T) {
	blogs := new(MockBlogRepository)
	svc := NewBlogService(blogs, zap.NewNop())

	id := bson.NewObjectID()
	blogs.On("GetBySlug", mock.Anything, "my-post", true).
		Return(&domain.BlogPost{ID: id, Slug: "my-post", Views: 10}, nil)
	blogs.On("IncrementViews", mock.Anything, id).Return(errors.New("write timeout"))

	post, err := svc.GetBySlug(context.Background(), "my-post")

	// A failed counter bump never fails the read.
	assert.NoError(t, err)
	assert.Equal(t, int64(10), post.Views)
}

func TestBlogService_List_Pagination(t *testing.T) {
	blogs := new(MockBlogRepository)
	svc := NewBlogService(blogs, zap.NewNop())

	blogs.On("List", mock.Anything, repository.BlogQuery{
		PublishedOnly: true,
		Category:      "golang",
		Page:          1,
		Limit:         10,
	}).Return([]domain.BlogPost{{Slug: "a"}, {Slug: "b"}}, int64(23), nil)

	resp, err := svc.List(context.Background(), &dto.BlogListRequest{Category: "golang", Page: 1, Limit: 10})

	assert.NoError(t, err)
	assert.Len(t, resp.Blogs, 2)
	assert.Equal(t, int64(23), resp.Total)
	assert.Equal(t, int64(3), resp.TotalPages)
	assert.Equal(t, int64(1), resp.CurrentPage)
}

func TestBlogService_Like(t *testing.T) {
	blogs := new(MockBlogRepository)
	svc := NewBlogService(blogs, zap.NewNop())

	id := bson.NewObjectID()
	blogs.On("IncrementLikes", mock.Anything, id).Return(int64(43), nil)

	likes, err := svc.Like(context.Background(), id.Hex())

	assert.NoError(t, err)
	assert.Equal(t, int64(43), likes)
}

func TestSlugify(t *testing.T) {
	assert.Equal(t, "hello-world", domain.Slugify("Hello, World!"))
	assert.Equal(t, "go-1-24-generics", domain.Slugify("Go 1.24 & Generics"))
	assert.Equal(t, "", domain.Slugify("!!!"))
}
