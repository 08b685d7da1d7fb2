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

type userRepository struct {
	collection *mongo.Collection
}

func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{
		collection: db.Collection(database.UserCollection),
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	user.ID = primitive.NewObjectID()
	start := time.Now()
	_, err := r.collection.InsertOne(ctx, user)
	metrics.MongoOperationDuration.WithLabelValues("insert", database.UserCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("insert", database.UserCollection).Inc()
		return primitive.NilObjectID, err
	}
	return user.ID, nil
}

func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	start := time.Now()
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.UserCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		if err != mongo.ErrNoDocuments {
			metrics.MongoErrorsTotal.WithLabelValues("find_one", database.UserCollection).Inc()
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	start := time.Now()
	err := r.collection.FindOne(ctx, bson.M{"email": email, "status": models.UserStatusActive}).Decode(&user)
	metrics.MongoOperationDuration.WithLabelValues("find_one", database.UserCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		if err != mongo.ErrNoDocuments {
			metrics.MongoErrorsTotal.WithLabelValues("find_one", database.UserCollection).Inc()
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"mobile": mobile},
	}}
	start := time.Now()
	count, err := r.collection.CountDocuments(ctx, filter)
	metrics.MongoOperationDuration.WithLabelValues("count_documents", database.UserCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("count_documents", database.UserCollection).Inc()
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) FindRecent(ctx context.Context, limit int64) ([]models.User, error) {
	findOptions := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetLimit(limit)

	start := time.Now()
	cursor, err := r.collection.Find(ctx, bson.M{}, findOptions)
	metrics.MongoOperationDuration.WithLabelValues("find", database.UserCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("find", database.UserCollection).Inc()
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("cursor_all", database.UserCollection).Inc()
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now().UTC(),
	}}
	start := time.Now()
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	metrics.MongoOperationDuration.WithLabelValues("update_one", database.UserCollection).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.MongoErrorsTotal.WithLabelValues("update_one", database.UserCollection).Inc()
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
