package services

import (
	"context"
	"time"

	"estatehub/internal/models"
	"estatehub/internal/repositories"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// In-memory repository fakes. Newest-first ordering is modeled by returning
// records in reverse insertion order.

type fakeUserRepo struct {
	users []*models.User
	err   error
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.users = append(f.users, user)
	return user.ID, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) FindActiveByEmail(_ context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Email == email && u.Status == models.UserStatusActive {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeUserRepo) ExistsByEmailOrMobile(_ context.Context, email, mobile string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	for _, u := range f.users {
		if u.Email == email || u.Mobile == mobile {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) FindRecent(_ context.Context, limit int64) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.User
	for i := len(f.users) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, *f.users[i])
	}
	return out, nil
}

func (f *fakeUserRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) error {
	if f.err != nil {
		return f.err
	}
	for _, u := range f.users {
		if u.ID == id {
			u.Status = status
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakePropertyRepo struct {
	properties []*models.Property
	lastFilter *repositories.PropertyFilter
	lastFields bson.M
	err        error
}

func (f *fakePropertyRepo) Create(_ context.Context, property *models.Property) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	f.properties = append(f.properties, property)
	return property.ID, nil
}

func (f *fakePropertyRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakePropertyRepo) Find(_ context.Context, filter *repositories.PropertyFilter) ([]models.Property, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastFilter = filter
	var out []models.Property
	for i := len(f.properties) - 1; i >= 0; i-- {
		out = append(out, *f.properties[i])
	}
	return out, nil
}

func (f *fakePropertyRepo) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.properties {
		if p.ID == id {
			f.lastFields = fields
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (f *fakePropertyRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	if f.err != nil {
		return f.err
	}
	for i, p := range f.properties {
		if p.ID == id {
			f.properties = append(f.properties[:i], f.properties[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakeMessageRepo struct {
	messages  []*models.Message
	lastLimit int64
	err       error
}

func (f *fakeMessageRepo) Create(_ context.Context, message *models.Message) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	if message.ID.IsZero() {
		message.ID = primitive.NewObjectID()
	}
	f.messages = append(f.messages, message)
	return message.ID, nil
}

func (f *fakeMessageRepo) FindForUser(_ context.Context, userID string, limit int64) ([]models.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastLimit = limit
	var out []models.Message
	for i := len(f.messages) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		m := f.messages[i]
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments   []*models.Payment
	lastFields bson.M
	err        error
}

func (f *fakePaymentRepo) Create(_ context.Context, payment *models.Payment) (primitive.ObjectID, error) {
	if f.err != nil {
		return primitive.NilObjectID, f.err
	}
	if payment.ID.IsZero() {
		payment.ID = primitive.NewObjectID()
	}
	f.payments = append(f.payments, payment)
	return payment.ID, nil
}

func (f *fakePaymentRepo) FindRecent(_ context.Context, buyerID string, limit int64) ([]models.Payment, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.Payment
	for i := len(f.payments) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		p := f.payments[i]
		if buyerID == "" || p.BuyerID == buyerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePaymentRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, fields bson.M) error {
	if f.err != nil {
		return f.err
	}
	for _, p := range f.payments {
		if p.ID == id {
			f.lastFields = fields
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type fakePropertyCache struct {
	entries     map[string]*models.Property
	invalidated []string
}

func newFakePropertyCache() *fakePropertyCache {
	return &fakePropertyCache{entries: make(map[string]*models.Property)}
}

func (f *fakePropertyCache) GetProperty(_ context.Context, id string) (*models.Property, error) {
	return f.entries[id], nil
}

func (f *fakePropertyCache) SetProperty(_ context.Context, id string, property *models.Property, _ time.Duration) error {
	f.entries[id] = property
	return nil
}

func (f *fakePropertyCache) Invalidate(_ context.Context, id string) error {
	delete(f.entries, id)
	f.invalidated = append(f.invalidated, id)
	return nil
}

// seedUser inserts a user directly into the fake store.
func seedUser(repo *fakeUserRepo, status string) *models.User {
	user := &models.User{
		ID:       primitive.NewObjectID(),
		FullName: "Asha Verma",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		Role:     models.RoleBuyer,
		Status:   status,
	}
	repo.users = append(repo.users, user)
	return user
}

func seedProperty(repo *fakePropertyRepo, ownerID string) *models.Property {
	property := &models.Property{
		ID:           primitive.NewObjectID(),
		OwnerID:      ownerID,
		Title:        "2BHK near the lake",
		PropertyType: models.PropertyTypeApartment,
		Price:        4500000,
		Currency:     "INR",
		Status:       models.PropertyStatusActive,
	}
	repo.properties = append(repo.properties, property)
	return property
}
