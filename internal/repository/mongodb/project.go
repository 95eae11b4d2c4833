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

// ProjectRepository implements repository.ProjectRepository on MongoDB.
type ProjectRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(client *Client, log *zap.Logger) *ProjectRepository {
	return &ProjectRepository{
		coll: client.Database().Collection(collProjects),
		log:  log,
	}
}

// List returns projects sorted by order then creation date descending.
func (r *ProjectRepository) List(ctx context.Context, visibleOnly bool) ([]domain.Project, error) {
	filter := bson.D{}
	if visibleOnly {
		filter = append(filter, bson.E{Key: "isVisible", Value: true})
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find projects: %v", domain.ErrStorage, err)
	}

	var projects []domain.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, fmt.Errorf("%w: failed to decode projects: %v", domain.ErrStorage, err)
	}
	return projects, nil
}

// Get returns a single project by ID.
func (r *ProjectRepository) Get(ctx context.Context, id bson.ObjectID) (*domain.Project, error) {
	var project domain.Project
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&project)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find project: %v", domain.ErrStorage, err)
	}
	return &project, nil
}

// Insert stores a new project.
func (r *ProjectRepository) Insert(ctx context.Context, project *domain.Project) (*domain.Project, error) {
	now := time.Now().UTC()
	project.ID = bson.NewObjectID()
	project.CreatedAt = now
	project.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, project); err != nil {
		return nil, fmt.Errorf("%w: failed to insert project: %v", domain.ErrStorage, err)
	}
	return project, nil
}

// Update replaces the stored fields of an existing project.
func (r *ProjectRepository) Update(ctx context.Context, id bson.ObjectID, project *domain.Project) (*domain.Project, error) {
	project.ID = bson.ObjectID{}
	project.CreatedAt = time.Time{}
	project.UpdatedAt = time.Now().UTC()

	update := bson.D{{Key: "$set", Value: project}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Project
	err := r.coll.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to update project: %v", domain.ErrStorage, err)
	}
	return &updated, nil
}

// Delete removes a project. Analytics events referencing it are left in
// place; their references simply become dangling.
func (r *ProjectRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("%w: failed to delete project: %v", domain.ErrStorage, err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the total number of projects.
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count projects: %v", domain.ErrStorage, err)
	}
	return count, nil
}

// TitlesByIDs resolves project titles for the given IDs. IDs that no longer
// resolve are absent from the returned map.
func (r *ProjectRepository) TitlesByIDs(ctx context.Context, ids []bson.ObjectID) (map[bson.ObjectID]string, error) {
	return titlesByIDs(ctx, r.coll, ids)
}
