package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"estatehub/internal/middleware"
	"estatehub/internal/models"
	"estatehub/internal/repositories"
	"estatehub/internal/services"
	"estatehub/internal/transformers"
	"estatehub/internal/validators"
	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const testSecret = "test-secret"

// In-memory stores backing the HTTP tests.

type stubUserRepo struct {
	users []*models.User
}

func (s *stubUserRepo) Create(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	s.users = append(s.users, user)
	return user.ID, nil
}

func (s *stubUserRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *stubUserRepo) FindActiveByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email && u.Status == models.UserStatusActive {
			return u, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *stubUserRepo) ExistsByEmailOrMobile(_ context.Context, email, mobile string) (bool, error) {
	for _, u := range s.users {
		if u.Email == email || u.Mobile == mobile {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubUserRepo) FindRecent(_ context.Context, limit int64) ([]models.User, error) {
	var out []models.User
	for i := len(s.users) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, *s.users[i])
	}
	return out, nil
}

func (s *stubUserRepo) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) error {
	for _, u := range s.users {
		if u.ID == id {
			u.Status = status
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type stubPropertyRepo struct {
	properties []*models.Property
	lastFilter *repositories.PropertyFilter
}

func (s *stubPropertyRepo) Create(_ context.Context, property *models.Property) (primitive.ObjectID, error) {
	if property.ID.IsZero() {
		property.ID = primitive.NewObjectID()
	}
	s.properties = append(s.properties, property)
	return property.ID, nil
}

func (s *stubPropertyRepo) FindByID(_ context.Context, id primitive.ObjectID) (*models.Property, error) {
	for _, p := range s.properties {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (s *stubPropertyRepo) Find(_ context.Context, filter *repositories.PropertyFilter) ([]models.Property, error) {
	s.lastFilter = filter
	var out []models.Property
	for i := len(s.properties) - 1; i >= 0; i-- {
		out = append(out, *s.properties[i])
	}
	return out, nil
}

func (s *stubPropertyRepo) UpdateFields(_ context.Context, id primitive.ObjectID, fields bson.M) error {
	for _, p := range s.properties {
		if p.ID == id {
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (s *stubPropertyRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, p := range s.properties {
		if p.ID == id {
			s.properties = append(s.properties[:i], s.properties[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

type stubPropertyCache struct{}

func (stubPropertyCache) GetProperty(context.Context, string) (*models.Property, error) {
	return nil, nil
}

func (stubPropertyCache) SetProperty(context.Context, string, *models.Property, time.Duration) error {
	return nil
}

func (stubPropertyCache) Invalidate(context.Context, string) error { return nil }

// testEnv bundles the router with the stores behind it.
type testEnv struct {
	router     *gin.Engine
	users      *stubUserRepo
	properties *stubPropertyRepo
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(io.Discard, "ERROR")

	users := &stubUserRepo{}
	properties := &stubPropertyRepo{}

	userValidator := validators.NewUserValidator()
	userService := services.NewUserService(users, userValidator, transformers.NewUserTransformer(), testSecret)
	propertyService := services.NewPropertyService(properties, users, stubPropertyCache{}, transformers.NewPropertyTransformer(), validators.NewPropertyValidator())
	adminService := services.NewAdminService(users, userValidator)

	authHandler := NewAuthHandler(userService)
	propertyHandler := NewPropertyHandler(propertyService)
	adminHandler := NewAdminHandler(adminService)

	router := gin.New()
	router.Use(middleware.ErrorHandler())

	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)

	router.POST("/properties", propertyHandler.Create)
	router.GET("/properties", propertyHandler.List)
	router.GET("/properties/:id", propertyHandler.Get)
	router.PUT("/properties/:id", propertyHandler.Update)
	router.DELETE("/properties/:id", propertyHandler.Delete)
	router.POST("/properties/:id/verify", propertyHandler.Verify)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(testSecret))
	admin.Use(middleware.RequireAdmin())
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.POST("/users/:id/status", adminHandler.UpdateUserStatus)
	}

	return &testEnv{router: router, users: users, properties: properties}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func (e *testEnv) seedUser(role string) *models.User {
	user := &models.User{
		ID:       primitive.NewObjectID(),
		FullName: "Asha Verma",
		Email:    "asha@example.com",
		Mobile:   "9876543210",
		Role:     role,
		Status:   models.UserStatusActive,
	}
	e.users.users = append(e.users.users, user)
	return user
}

func (e *testEnv) seedProperty(ownerID string) *models.Property {
	property := &models.Property{
		ID:           primitive.NewObjectID(),
		OwnerID:      ownerID,
		Title:        "2BHK near the lake",
		PropertyType: models.PropertyTypeApartment,
		Price:        4500000,
		Currency:     "INR",
		City:         "Pune",
		Status:       models.PropertyStatusActive,
	}
	e.properties.properties = append(e.properties.properties, property)
	return property
}
