package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"estatehub/internal/models"
)

// UserRepository defines data operations on the "user" collection.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindActiveByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmailOrMobile(ctx context.Context, email, mobile string) (bool, error)
	FindRecent(ctx context.Context, limit int64) ([]models.User, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) error
}

// PropertyRepository defines data operations on the "property" collection.
// Update-style methods return mongo.ErrNoDocuments when no record matched.
type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) (primitive.ObjectID, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Property, error)
	Find(ctx context.Context, filter *PropertyFilter) ([]models.Property, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// MessageRepository defines data operations on the "message" collection.
type MessageRepository interface {
	Create(ctx context.Context, message *models.Message) (primitive.ObjectID, error)
	FindForUser(ctx context.Context, userID string, limit int64) ([]models.Message, error)
}

// PaymentRepository defines data operations on the "payment" collection.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) (primitive.ObjectID, error)
	FindRecent(ctx context.Context, buyerID string, limit int64) ([]models.Payment, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, fields bson.M) error
}

// PropertyCache caches single property documents by id.
type PropertyCache interface {
	GetProperty(ctx context.Context, id string) (*models.Property, error)
	SetProperty(ctx context.Context, id string, property *models.Property, expiration time.Duration) error
	Invalidate(ctx context.Context, id string) error
}
