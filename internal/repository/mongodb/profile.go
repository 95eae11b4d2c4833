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
)

// ProfileRepository implements repository.ProfileRepository on MongoDB.
// The collection holds at most one document; all writes are upserts against
// an empty filter so the singleton is created on first write.
type ProfileRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(client *Client, log *zap.Logger) *ProfileRepository {
	return &ProfileRepository{
		coll: client.Database().Collection(collProfiles),
		log:  log,
	}
}

// Get returns the profile document regardless of visibility.
func (r *ProfileRepository) Get(ctx context.Context) (*domain.Profile, error) {
	return r.findOne(ctx, bson.D{})
}

// GetVisible returns the profile only when it is marked visible.
func (r *ProfileRepository) GetVisible(ctx context.Context) (*domain.Profile, error) {
	return r.findOne(ctx, bson.D{{Key: "isVisible", Value: true}})
}

func (r *ProfileRepository) findOne(ctx context.Context, filter bson.D) (*domain.Profile, error) {
	var profile domain.Profile
	err := r.coll.FindOne(ctx, filter).Decode(&profile)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find profile: %v", domain.ErrStorage, err)
	}
	return &profile, nil
}

// Upsert replaces the singleton profile, creating it if absent.
func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	now := time.Now().UTC()
	profile.ID = bson.ObjectID{}
	profile.UpdatedAt = now

	update := bson.D{
		{Key: "$set", Value: profile},
		{Key: "$setOnInsert", Value: bson.D{{Key: "createdAt", Value: now}}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var updated domain.Profile
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{}, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("%w: failed to upsert profile: %v", domain.ErrStorage, err)
	}
	return &updated, nil
}

// SetResumeURL updates only the resume URL, creating the profile if absent.
func (r *ProfileRepository) SetResumeURL(ctx context.Context, url string) (*domain.Profile, error) {
	update := bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "resumeUrl", Value: url},
			{Key: "updatedAt", Value: time.Now().UTC()},
		}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var updated domain.Profile
	if err := r.coll.FindOneAndUpdate(ctx, bson.D{}, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("%w: failed to set resume URL: %v", domain.ErrStorage, err)
	}
	return &updated, nil
}
