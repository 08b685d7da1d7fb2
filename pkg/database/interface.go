package database

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Database is the interface handlers and repositories use to reach collections.
type Database interface {
	GetCollection(name string) *mongo.Collection
	ListCollectionNames(ctx context.Context) ([]string, error)
	Name() string
}

// MongoDatabase implements Database over a *mongo.Database.
type MongoDatabase struct {
	db *mongo.Database
}

func NewMongoDatabase(db *mongo.Database) *MongoDatabase {
	return &MongoDatabase{db: db}
}

func (m *MongoDatabase) GetCollection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

func (m *MongoDatabase) ListCollectionNames(ctx context.Context) ([]string, error) {
	return m.db.ListCollectionNames(ctx, bson.M{})
}

func (m *MongoDatabase) Name() string {
	return m.db.Name()
}
