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

type paymentRepository struct {
	collection *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) PaymentRepository {
	return &paymentRepository{
		collection: db.Collection(database.PaymentCollection),
	}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	payment.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, payment)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.PaymentCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.PaymentCollection).Inc()
		return primitive.NilObjectID, err
	}
	return payment.ID, nil
}

func (r *paymentRepository) FindRecent(ctx context.Context, buyerID string, limit int64) ([]models.Payment, error) {
	filter := bson.M{}
	if buyerID != "" {
		filter["buyer_id"] = buyerID
	}
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)

	start := time.Now()
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.PaymentCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.PaymentCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.PaymentCollection).Inc()
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	metrics.MongoOperationDuration.WithLabelValues("update_one", database.PaymentCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", database.PaymentCollection).Inc()
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
