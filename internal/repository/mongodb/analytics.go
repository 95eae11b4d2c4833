package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/domain"
	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/repository"
)

// AnalyticsRepository implements repository.AnalyticsRepository on MongoDB.
type AnalyticsRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

// NewAnalyticsRepository creates a new analytics repository.
func NewAnalyticsRepository(client *Client, log *zap.Logger) *AnalyticsRepository {
	return &AnalyticsRepository{
		coll: client.Database().Collection(collAnalytics),
		log:  log,
	}
}

// Insert appends a single event. CreatedAt is assigned here, at append time.
func (r *AnalyticsRepository) Insert(ctx context.Context, event *domain.AnalyticsEvent) (bson.ObjectID, error) {
	event.CreatedAt = time.Now().UTC()

	res, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: failed to insert event: %v", domain.ErrStorage, err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, fmt.Errorf("%w: unexpected inserted ID type %T", domain.ErrStorage, res.InsertedID)
	}
	return id, nil
}

// CountByType counts events of one type created at or after since.
func (r *AnalyticsRepository) CountByType(ctx context.Context, eventType domain.EventType, since time.Time) (int64, error) {
	filter := bson.D{
		{Key: "type", Value: eventType},
		{Key: "createdAt", Value: bson.D{{Key: "$gte", Value: since}}},
	}

	count, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count %s events: %v", domain.ErrStorage, eventType, err)
	}
	return count, nil
}

// CountRefs groups view events by their entity reference and counts each
// group. Results are sorted by count descending, then reference ascending,
// so equal counts come back in a deterministic order.
func (r *AnalyticsRepository) CountRefs(ctx context.Context, eventType domain.EventType, since time.Time) ([]repository.RefCount, error) {
	refField := "projectId"
	if eventType == domain.EventBlogView {
		refField = "blogId"
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "type", Value: eventType},
			{Key: "createdAt", Value: bson.D{{Key: "$gte", Value: since}}},
			{Key: refField, Value: bson.D{{Key: "$exists", Value: true}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + refField},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "_id", Value: 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to aggregate %s refs: %v", domain.ErrStorage, eventType, err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			r.log.Error("Failed to close ref aggregation cursor", zap.Error(err))
		}
	}()

	var rows []struct {
		ID    bson.ObjectID `bson:"_id"`
		Count int64         `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: failed to decode %s ref counts: %v", domain.ErrStorage, eventType, err)
	}

	refs := make([]repository.RefCount, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, repository.RefCount{ID: row.ID, Count: row.Count})
	}
	return refs, nil
}

// CountByDay buckets events of the given types by calendar day (UTC).
// Days with no events produce no bucket.
func (r *AnalyticsRepository) CountByDay(ctx context.Context, eventTypes []domain.EventType, since time.Time) ([]repository.DayCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{
			{Key: "type", Value: bson.D{{Key: "$in", Value: eventTypes}}},
			{Key: "createdAt", Value: bson.D{{Key: "$gte", Value: since}}},
		}}},
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$createdAt"},
			}}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to aggregate daily counts: %v", domain.ErrStorage, err)
	}
	defer func() {
		if err := cursor.Close(ctx); err != nil {
			r.log.Error("Failed to close daily aggregation cursor", zap.Error(err))
		}
	}()

	var rows []struct {
		Date  string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("%w: failed to decode daily counts: %v", domain.ErrStorage, err)
	}

	days := make([]repository.DayCount, 0, len(rows))
	for _, row := range rows {
		days = append(days, repository.DayCount{Date: row.Date, Count: row.Count})
	}
	return days, nil
}

// Find returns one page of events matching the query, newest first. The
// secondary sort on _id makes the order total even when timestamps collide.
func (r *AnalyticsRepository) Find(ctx context.Context, query repository.EventQuery) ([]domain.AnalyticsEvent, int64, error) {
	filter := bson.D{}
	if query.Type != "" {
		filter = append(filter, bson.E{Key: "type", Value: query.Type})
	}
	if query.Start != nil || query.End != nil {
		window := bson.D{}
		if query.Start != nil {
			window = append(window, bson.E{Key: "$gte", Value: *query.Start})
		}
		if query.End != nil {
			window = append(window, bson.E{Key: "$lte", Value: *query.End})
		}
		filter = append(filter, bson.E{Key: "createdAt", Value: window})
	}

	total, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to count events: %v", domain.ErrStorage, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip((query.Page - 1) * query.Limit).
		SetLimit(query.Limit)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: failed to find events: %v", domain.ErrStorage, err)
	}

	var events []domain.AnalyticsEvent
	if err := cursor.All(ctx, &events); err != nil {
		return nil, 0, fmt.Errorf("%w: failed to decode events: %v", domain.ErrStorage, err)
	}

	return events, total, nil
}
