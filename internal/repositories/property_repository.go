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
)

type propertyRepository struct {
	collection *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) PropertyRepository {
	return &propertyRepository{
		collection: db.Collection(database.PropertyCollection),
	}
}

func (r *propertyRepository) Create(ctx context.Context, property *models.Property) (primitive.ObjectID, error) {
	property.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, property)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.PropertyCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.PropertyCollection).Inc()
		return primitive.NilObjectID, err
	}
	return property.ID, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error) {
	var property models.Property
	start := time.Now()
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.PropertyCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		if err != mongo.ErrNoDocuments {
			metrics.MongoErrorsTotal.WithLabelValues("find_one", database.PropertyCollection).Inc()
		}
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) Find(ctx context.Context, filter *PropertyFilter) ([]models.Property, error) {
	query, findOptions := filter.Compile()

	start := time.Now()
	cursor, err := r.collection.Find(ctx, query, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.PropertyCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.PropertyCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	if err := cursor.All(ctx, &properties); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.PropertyCollection).Inc()
		return nil, err
	}
	return properties, nil
}

func (r *propertyRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error {
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	metrics.MongoOperationDuration.WithLabelValues("update_one", database.PropertyCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", database.PropertyCollection).Inc()
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *propertyRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	start := time.Now()
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	metrics.MongoOperationDuration.WithLabelValues("delete_one", database.PropertyCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("delete_one", database.PropertyCollection).Inc()
		return err
	}
	if result.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
