package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository"
)

// BlogRepository implements repository.BlogRepository on MongoDB.
type BlogRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

// NewBlogRepository creates a new blog repository.
func NewBlogRepository(client *Client, log *zap.Logger) *BlogRepository {
	return &BlogRepository{
		coll: client.Database().Collection(collBlogs),
		log:  log,
	}
}

func blogFilter(query repository.BlogQuery) bson.D {
	filter := bson.D{}
	if query.PublishedOnly {
		filter = append(filter, bson.E{Key: "isPublished", Value: true})
	}
	if query.Category != "" {
		filter = append(filter, bson.E{Key: "category", Value: query.Category})
	}
	if query.Tag != "" {
		filter = append(filter, bson.E{Key: "tags", Value: bson.D{{Key: "$in", Value: []string{query.Tag}}}})
	}
	if query.Search != "" {
		regex := bson.D{{Key: "$regex", Value: query.Search}, {Key: "$options", Value: "i"}}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "title", Value: regex}},
			bson.D{{Key: "excerpt", Value: regex}},
			bson.D{{Key: "content", Value: regex}},
		}})
	}
	return filter
}

// List returns one page of posts plus the total matching count. Published
// listings exclude the content field and sort by publish date; admin
// listings include everything and sort by creation date.
func (r *BlogRepository) List(ctx context.Context, query repository.BlogQuery) ([]domain.BlogPost, int64, error) {
	filter := blogFilter(query)

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to count blog posts: %v", domain.ErrStorage, err)
	}

	opts := options.Find().
		SetSkip((query.Page - 1) * query.Limit).
		SetLimit(query.Limit)

	if query.PublishedOnly {
		opts = opts.
			SetSort(bson.D{{Key: "publishedAt", Value: -1}, {Key: "_id", Value: -1}}).
			SetProjection(bson.D{{Key: "content", Value: 0}})
	} else {
		opts = opts.SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	}

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to find blog posts: %v", domain.ErrStorage, err)
	}

	var posts []domain.BlogPost
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, 0, fmt.Errorf("%w: failed to decode blog posts: %v", domain.ErrStorage, err)
	}

	return posts, total, nil
}

// Get returns a single post by ID.
func (r *BlogRepository) Get(ctx context.Context, id bson.ObjectID) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find blog post: %v", domain.ErrStorage, err)
	}
	return &post, nil
}

// GetBySlug returns a single post by slug, optionally restricted to
// published posts.
func (r *BlogRepository) GetBySlug(ctx context.Context, slug string, publishedOnly bool) (*domain.BlogPost, error) {
	filter := bson.D{{Key: "slug", Value: slug}}
	if publishedOnly {
		filter = append(filter, bson.E{Key: "isPublished", Value: true})
	}

	var post domain.BlogPost
	err := r.coll.FindOne(ctx, filter).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find blog post by slug: %v", domain.ErrStorage, err)
	}
	return &post, nil
}

// SlugExists reports whether another post already uses the slug.
func (r *BlogRepository) SlugExists(ctx context.Context, slug string, excludeID *bson.ObjectID) (bool, error) {
	filter := bson.D{{Key: "slug", Value: slug}}
	if excludeID != nil {
		filter = append(filter, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: *excludeID}}})
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("%w: failed to check slug: %v", domain.ErrStorage, err)
	}
	return count > 0, nil
}

// Insert stores a new post.
func (r *BlogRepository) Insert(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	now := time.Now().UTC()
	post.ID = bson.NewObjectID()
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: a post with slug %q already exists", domain.ErrValidation, post.Slug)
		}
		return nil, fmt.Errorf("%w: failed to insert blog post: %v", domain.ErrStorage, err)
	}
	return post, nil
}

// Update replaces the stored fields of an existing post.
func (r *BlogRepository) Update(ctx context.Context, id bson.ObjectID, post *domain.BlogPost) (*domain.BlogPost, error) {
	post.ID = bson.ObjectID{}
	post.CreatedAt = time.Time{}
	post.UpdatedAt = time.Now().UTC()

	update := bson.D{{Key: "$set", Value: post}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.BlogPost
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%w: a post with slug %q already exists", domain.ErrValidation, post.Slug)
		}
		return nil, fmt.Errorf("%w: failed to update blog post: %v", domain.ErrStorage, err)
	}
	return &updated, nil
}

// Delete removes a post.
func (r *BlogRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("%w: failed to delete blog post: %v", domain.ErrStorage, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter by one.
func (r *BlogRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}}
	if _, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update); err != nil {
		return fmt.Errorf("%w: failed to increment views: %v", domain.ErrStorage, err)
	}
	return nil
}

// IncrementLikes bumps the like counter and returns the new value.
func (r *BlogRepository) IncrementLikes(ctx context.Context, id bson.ObjectID) (int64, error) {
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "likes", Value: 1}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.BlogPost
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("%w: failed to increment likes: %v", domain.ErrStorage, err)
	}
	return updated.Likes, nil
}

// CountPublished counts published posts.
func (r *BlogRepository) CountPublished(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{{Key: "isPublished", Value: true}})
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count published posts: %v", domain.ErrStorage, err)
	}
	return count, nil
}

// DistinctCategories returns the categories used by published posts.
func (r *BlogRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "category")
}

// DistinctTags returns the tags used by published posts.
func (r *BlogRepository) DistinctTags(ctx context.Context) ([]string, error) {
	return r.distinctStrings(ctx, "tags")
}

func (r *BlogRepository) distinctStrings(ctx context.Context, field string) ([]string, error) {
	filter := bson.D{{Key: "isPublished", Value: true}}

	var values []string
	if err := r.coll.Distinct(ctx, field, filter).Decode(&values); err != nil {
		return nil, fmt.Errorf("%w: failed to list distinct %s: %v", domain.ErrStorage, field, err)
	}

	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out, nil
}

// TitlesByIDs resolves post titles for the given IDs. IDs that no longer
// resolve are absent from the returned map.
func (r *BlogRepository) TitlesByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]string, error) {
	return titlesByIDs(ctx, r.coll, ids)
}

// titlesByIDs is the shared batch title lookup used by the dashboard join.
func titlesByIDs(ctx context.Context, coll *mongo.Collection, ids []bson.ObjectID) (map[bson.ObjectID]string, error) {
	titles := make(map[bson.ObjectID]string, len(ids))
	if len(ids) == 0 {
		return titles, nil
	}

	filter := bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}}}
	opts := options.Find().SetProjection(bson.D{{Key: "title", Value: 1}})

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve titles: %v", domain.ErrStorage, err)
	}

	var rows []struct {
		ID    bson.ObjectID `bson:"_id"`
		Title string        `bson:"title"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: failed to decode titles: %v", domain.ErrStorage, err)
	}

	for _, row := range rows {
		titles[row.ID] = row.Title
	}
	return titles, nil
}
