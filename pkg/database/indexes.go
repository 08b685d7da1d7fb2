package database

import (
	"context"
	"time"

	"estatehub/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateIndexes creates the startup indexes: unique user email/mobile,
// compound location/type and price on properties.
func CreateIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	start := time.Now()
	_, err := db.Collection(UserCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "mobile", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", UserCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", UserCollection).Inc()
		return err
	}

	start = time.Now()
	_, err = db.Collection(PropertyCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "city", Value: 1},
				{Key: "state", Value: 1},
				{Key: "property_type", Value: 1},
			},
		},
		{
			Keys: bson.D{{Key: "price", Value: 1}},
		},
	})
	metrics.MongoOperationDuration.WithLabelValues("create_indexes", PropertyCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("create_indexes", PropertyCollection).Inc()
		return err
	}

	return nil
}
