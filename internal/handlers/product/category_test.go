package product

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"oudora_back_end/internal/models"
	"oudora_back_end/internal/store"
)

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) List(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *mockCategoryStore) Insert(ctx context.Context, c *models.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCategoryStore) GetByID(ctx context.Context, id gocql.UUID) (*models.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Category), args.Error(1)
}

func (m *mockCategoryStore) Update(ctx context.Context, c *models.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *mockCategoryStore) DeleteByName(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func categoryRouter(h *CategoryHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/categories", h.List)
	r.POST("/api/categories", h.Create)
	r.DELETE("/api/categories/:name", h.Delete)
	return r
}

func TestCreateCategoryDuplicateConflict(t *testing.T) {
	s := new(mockCategoryStore)
	s.On("Insert", mock.Anything, mock.AnythingOfType("*models.Category")).Return(store.ErrDuplicate).Once()

	r := categoryRouter(NewCategoryHandler(s))

	body, _ := json.Marshal(gin.H{"name": "Woody"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "Category already exists")

	// No second row: List is never consulted after a rejected insert.
	s.AssertNotCalled(t, "List", mock.Anything)
}

func TestCreateCategoryReturnsFullList(t *testing.T) {
	s := new(mockCategoryStore)
	s.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
	s.On("List", mock.Anything).Return([]models.Category{
		{Name: "Woody"}, {Name: "Floral"}, {Name: "Musky"},
	}, nil).Once()

	r := categoryRouter(NewCategoryHandler(s))

	body, _ := json.Marshal(gin.H{"name": "Musky", "description": "Soft musk blends"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Len(t, categories, 3)

	s.AssertExpectations(t)
}

func TestCreateCategoryMissingName(t *testing.T) {
	s := new(mockCategoryStore)
	r := categoryRouter(NewCategoryHandler(s))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/categories", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	s.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestListCategoriesSeedsDefaults(t *testing.T) {
	s := new(mockCategoryStore)
	s.On("List", mock.Anything).Return([]models.Category{}, nil).Once()
	s.On("Insert", mock.Anything, mock.AnythingOfType("*models.Category")).Return(nil).Times(3)
	s.On("List", mock.Anything).Return([]models.Category{
		{Name: "Woody"}, {Name: "Floral"}, {Name: "Fresh"},
	}, nil).Once()

	r := categoryRouter(NewCategoryHandler(s))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/categories", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	assert.Len(t, categories, 3)

	s.AssertExpectations(t)
}

func TestDeleteCategoryNotFound(t *testing.T) {
	s := new(mockCategoryStore)
	s.On("DeleteByName", mock.Anything, "Ghost").Return(store.ErrNotFound).Once()

	r := categoryRouter(NewCategoryHandler(s))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/categories/Ghost", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	s.AssertExpectations(t)
}
