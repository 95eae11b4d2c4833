package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.uber.org/zap"

	"github.com/Raju-singh18/My-Portfolio-backend-deploy/internal/config"
)

// Collection names used by the repositories.
const (
	collAnalytics   = "analytics"
	collProfiles    = "profiles"
	collSkills      = "skills"
	collExperiences = "experiences"
	collBlogs       = "blogs"
	collProjects    = "projects"
	collContacts    = "contacts"
	collUsers       = "users"
)

// Client wraps the MongoDB connection and database handle.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
	log    *zap.Logger
}

// NewClient connects to MongoDB and verifies the connection.
func NewClient(ctx context.Context, cfg *config.Mongo, log *zap.Logger) (*Client, error) {
	log.Info("Connecting to MongoDB", zap.String("database", cfg.Database))

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		log.Error("Failed to connect to MongoDB", zap.Error(err))
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Error("Failed to ping MongoDB", zap.Error(err))
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Info("MongoDB connection established successfully")

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
		log:    log,
	}, nil
}

// Database returns the underlying database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// InitIndexes creates the indexes the queries rely on.
func (c *Client) InitIndexes(ctx context.Context) error {
	analyticsIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "type", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "projectId", Value: 1}, {Key: "createdAt", Value: -1}}},
		{Keys: bson.D{{Key: "blogId", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := c.db.Collection(collAnalytics).Indexes().CreateMany(ctx, analyticsIndexes); err != nil {
		return fmt.Errorf("failed to create analytics indexes: %w", err)
	}

	blogIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "isPublished", Value: 1}, {Key: "publishedAt", Value: -1}}},
	}
	if _, err := c.db.Collection(collBlogs).Indexes().CreateMany(ctx, blogIndexes); err != nil {
		return fmt.Errorf("failed to create blog indexes: %w", err)
	}

	userIndexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := c.db.Collection(collUsers).Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	c.log.Info("MongoDB indexes initialized successfully")
	return nil
}

// Ping checks if the MongoDB connection is alive.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, nil)
}

// Close disconnects from MongoDB.
func (c *Client) Close(ctx context.Context) error {
	c.log.Info("Closing MongoDB connection")
	if err := c.client.Disconnect(ctx); err != nil {
		c.log.Error("Error closing MongoDB connection", zap.Error(err))
		return err
	}
	return nil
}
