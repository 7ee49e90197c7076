package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	jobsCollection       = "jobs"
	interviewsCollection = "interviews"
)

// MongoClient owns the connection shared by the Mongo stores.
type MongoClient struct {
	raw    *mongo.Client
	dbName string
}

func NewMongoClient(ctx context.Context, uri, dbName string) (*MongoClient, error) {
	if uri == "" {
		return nil, errors.New("MONGO_URI is empty")
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := c.Ping(ctx, nil); err != nil {
		_ = c.Disconnect(context.Background())
		return nil, err
	}
	return &MongoClient{raw: c, dbName: dbName}, nil
}

func (c *MongoClient) Database() *mongo.Database {
	return c.raw.Database(c.dbName)
}

// EnsureIndexes creates the createdAt index used by the dashboard listing.
func (c *MongoClient) EnsureIndexes(ctx context.Context) error {
	_, err := c.Database().Collection(interviewsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return err
}

func (c *MongoClient) Disconnect(ctx context.Context) error {
	return c.raw.Disconnect(ctx)
}
