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

// ExperienceRepository implements repository.ExperienceRepository on MongoDB.
type ExperienceRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

// NewExperienceRepository creates a new experience repository.
func NewExperienceRepository(client *Client, log *zap.Logger) *ExperienceRepository {
	return &ExperienceRepository{
		coll: client.Database().Collection(collExperiences),
		log:  log,
	}
}

// List returns experiences sorted by order then start date descending.
// An empty expType imposes no type filter.
func (r *ExperienceRepository) List(ctx context.Context, visibleOnly bool, expType domain.ExperienceType) ([]domain.Experience, error) {
	filter := bson.D{}
	if visibleOnly {
		filter = append(filter, bson.E{Key: "isVisible", Value: true})
	}
	if expType != "" {
		filter = append(filter, bson.E{Key: "type", Value: expType})
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "startDate", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find experiences: %v", domain.ErrStorage, err)
	}

	var experiences []domain.Experience
	if err := cursor.All(ctx, &experiences); err != nil {
		return nil, fmt.Errorf("%w: failed to decode experiences: %v", domain.ErrStorage, err)
	}
	return experiences, nil
}

// Get returns a single experience by ID.
func (r *ExperienceRepository) Get(ctx context.Context, id bson.ObjectID) (*domain.Experience, error) {
	var exp domain.Experience
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&exp)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find experience: %v", domain.ErrStorage, err)
	}
	return &exp, nil
}

// Insert stores a new experience entry.
func (r *ExperienceRepository) Insert(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	now := time.Now().UTC()
	exp.ID = bson.NewObjectID()
	exp.CreatedAt = now
	exp.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, exp); err != nil {
		return nil, fmt.Errorf("%w: failed to insert experience: %v", domain.ErrStorage, err)
	}
	return exp, nil
}

// Update replaces the stored fields of an existing experience.
func (r *ExperienceRepository) Update(ctx context.Context, id bson.ObjectID, exp *domain.Experience) (*domain.Experience, error) {
	exp.ID = bson.ObjectID{}
	exp.CreatedAt = time.Time{}
	exp.UpdatedAt = time.Now().UTC()

	update := bson.D{{Key: "$set", Value: exp}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Experience
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update experience: %v", domain.ErrStorage, err)
	}
	return &updated, nil
}

// Delete removes an experience entry.
func (r *ExperienceRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("%w: failed to delete experience: %v", domain.ErrStorage, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
