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

// ContactRepository implements repository.ContactRepository on MongoDB.
type ContactRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

// NewContactRepository creates a new contact repository.
func NewContactRepository(client *Client, log *zap.Logger) *ContactRepository {
	return &ContactRepository{
		coll: client.Database().Collection(collContacts),
		log:  log,
	}
}

// Insert stores a new contact message.
func (r *ContactRepository) Insert(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	msg.ID = bson.NewObjectID()
	msg.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return nil, fmt.Errorf("%w: failed to insert contact message: %v", domain.ErrStorage, err)
	}
	return msg, nil
}

// List returns all contact messages, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]domain.ContactMessage, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find contact messages: %v", domain.ErrStorage, err)
	}

	var messages []domain.ContactMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("%w: failed to decode contact messages: %v", domain.ErrStorage, err)
	}
	return messages, nil
}

// MarkRead flags a message as read.
func (r *ContactRepository) MarkRead(ctx context.Context, id bson.ObjectID) error {
	update := bson.D{{Key: "$set", Value: bson.D{{Key: "isRead", Value: true}}}}
	res, err := r.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		return fmt.Errorf("%w: failed to mark message read: %v", domain.ErrStorage, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the total number of contact messages.
func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count contact messages: %v", domain.ErrStorage, err)
	}
	return count, nil
}

// UserRepository implements repository.UserRepository on MongoDB.
type UserRepository struct {
	coll *mongo.Collection
	log  *zap.Logger
}

// NewUserRepository creates a new user repository.
func NewUserRepository(client *Client, log *zap.Logger) *UserRepository {
	return &UserRepository{
		coll: client.Database().Collection(collUsers),
		log:  log,
	}
}

// FindByEmail returns the user with the given email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find user: %v", domain.ErrStorage, err)
	}
	return &user, nil
}

// Count returns the total number of admin accounts.
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("%w: failed to count users: %v", domain.ErrStorage, err)
	}
	return count, nil
}

// Insert stores a new admin account.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) error {
	user.ID = bson.NewObjectID()
	user.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		return fmt.Errorf("%w: failed to insert user: %v", domain.ErrStorage, err)
	}
	return nil
}
