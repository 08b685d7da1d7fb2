package repositories

import (
	"context"
	"time"

	"estatehub/internal/models"
	"estatehub/pkg/database"
	"estatehub/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type messageRepository struct {
	collection *mongo.Collection
}

func NewMessageRepository(db *mongo.Database) MessageRepository {
	return &messageRepository{
		collection: db.Collection(database.MessageCollection),
	}
}

func (r *messageRepository) Create(ctx context.Context, message *models.Message) (primitive.ObjectID, error) {
	message.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, message)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.MessageCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.MessageCollection).Inc()
		return primitive.NilObjectID, err
	}
	return message.ID, nil
}

func (r *messageRepository) FindForUser(ctx context.Context, userID string, limit int64) ([]models.Message, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": userID},
		bson.M{"receiver_id": userID},
	}}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)

	start := time.Now()
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.MessageCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.MessageCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.MessageCollection).Inc()
		return nil, err
	}
	return messages, nil
}
