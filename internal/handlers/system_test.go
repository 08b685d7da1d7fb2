package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"estatehub/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type stubDatabase struct {
	names []string
	err   error
}

func (s *stubDatabase) GetCollection(string) *mongo.Collection { return nil }

func (s *stubDatabase) ListCollectionNames(context.Context) ([]string, error) {
	return s.names, s.err
}

func (s *stubDatabase) Name() string { return "estatehub" }

func newSystemRouter(db *stubDatabase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(io.Discard, "ERROR")

	handler := NewSystemHandler(db)
	router := gin.New()
	router.GET("/", handler.Root)
	router.GET("/test", handler.Diagnostics)
	router.GET("/schema", handler.Schema)
	return router
}

func get(t *testing.T, router *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestRootBanner(t *testing.T) {
	router := newSystemRouter(&stubDatabase{})

	w := get(t, router, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "EstateHub API is running", body["message"])
}

func TestDiagnostics(t *testing.T) {
	router := newSystemRouter(&stubDatabase{names: []string{"user", "property"}})

	w := get(t, router, "/test")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "running", body["backend"])
	assert.Equal(t, "estatehub", body["database"])
	assert.Equal(t, "ok", body["connection"])
	assert.Len(t, body["collections"], 2)
}

func TestDiagnosticsTruncatesCollections(t *testing.T) {
	var names []string
	for i := 0; i < 15; i++ {
		names = append(names, fmt.Sprintf("collection_%d", i))
	}
	router := newSystemRouter(&stubDatabase{names: names})

	w := get(t, router, "/test")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["collections"], 10)
}

func TestDiagnosticsSummarizesErrors(t *testing.T) {
	router := newSystemRouter(&stubDatabase{err: errors.New("server selection timeout: no reachable servers")})

	w := get(t, router, "/test")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "error", body["connection"])

	// The raw driver error stays out of the response.
	assert.NotContains(t, w.Body.String(), "server selection timeout")
}

func TestSchemaEndpoint(t *testing.T) {
	router := newSystemRouter(&stubDatabase{})

	w := get(t, router, "/schema")
	require.Equal(t, http.StatusOK, w.Code)

	// The response is a bare array of descriptors, not a wrapper object.
	var schemas []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &schemas))
	require.Len(t, schemas, 4)

	var names []string
	for _, s := range schemas {
		names = append(names, s["name"].(string))
	}
	assert.ElementsMatch(t, []string{"user", "property", "message", "payment"}, names)

	// Field metadata survives serialization.
	assert.Contains(t, w.Body.String(), "property_type")
	assert.Contains(t, w.Body.String(), "APARTMENT")
}
