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

// SkillRepository implements repository.SkillRepository on MongoDB.
type SkillRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

// NewSkillRepository creates a new skill repository.
func NewSkillRepository(client *Client, log *zap.Logger) *SkillRepository {
	return &SkillRepository{
		coll: client.Database().Collection(collSkills),
		log:  log,
	}
}

// List returns skills sorted by order then name.
func (r *SkillRepository) List(ctx context.Context, visibleOnly bool) ([]domain.Skill, error) {
	filter := bson.D{}
	if visibleOnly {
		filter = append(filter, bson.E{Key: "isVisible", Value: true})
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find skills: %v", domain.ErrStorage, err)
	}

	var skills []domain.Skill
	if err := cursor.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("%w: failed to decode skills: %v", domain.ErrStorage, err)
	}
	return skills, nil
}

// Insert stores a new skill.
func (r *SkillRepository) Insert(ctx context.Context, skill *domain.Skill) (*domain.Skill, error) {
	now := time.Now().UTC()
	skill.ID = bson.NewObjectID()
	skill.CreatedAt = now
	skill.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, skill); err != nil {
		return nil, fmt.Errorf("%w: failed to insert skill: %v", domain.ErrStorage, err)
	}
	return skill, nil
}

// Update replaces the stored fields of an existing skill.
func (r *SkillRepository) Update(ctx context.Context, id bson.ObjectID, skill *domain.Skill) (*domain.Skill, error) {
	skill.ID = bson.ObjectID{}
	skill.CreatedAt = time.Time{}
	skill.UpdatedAt = time.Now().UTC()

	update := bson.D{{Key: "$set", Value: skill}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Skill
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update skill: %v", domain.ErrStorage, err)
	}
	return &updated, nil
}

// Delete removes a skill.
func (r *SkillRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("%w: failed to delete skill: %v", domain.ErrStorage, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetOrder updates the display order of a single skill.
func (r *SkillRepository) SetOrder(ctx context.Context, id bson.ObjectID, order int) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "order", Value: order},
		{Key: "updatedAt", Value: time.Now().UTC()},
	}}}

	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return fmt.Errorf("%w: failed to set skill order: %v", domain.ErrStorage, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}
