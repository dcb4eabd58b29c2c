package httpHandler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"estate-server/cache"
	"estate-server/entities"
	"estate-server/repositories"
	"estate-server/usecases"
	"estate-server/ws"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeListRepo struct {
	rows map[string]*entities.ListRow
}

func (f *fakeListRepo) Get(userID string) (*entities.ListRow, error) {
	row, ok := f.rows[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeListRepo) Upsert(row *entities.ListRow) error {
	copied := *row
	f.rows[row.UserID] = &copied
	return nil
}

func (f *fakeListRepo) Update(row *entities.ListRow) error {
	if _, ok := f.rows[row.UserID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copied := *row
	f.rows[row.UserID] = &copied
	return nil
}

type fakePropertyRepo struct{}

func (fakePropertyRepo) Create(*entities.Property) error          { return nil }
func (fakePropertyRepo) GetByID(string) (*entities.Property, error) {
	return nil, gorm.ErrRecordNotFound
}
func (fakePropertyRepo) GetAll() ([]entities.Property, error) { return nil, nil }
func (fakePropertyRepo) GetByDeveloperID(string) ([]entities.Property, error) {
	return nil, nil
}
func (fakePropertyRepo) Search(repositories.PropertySearch) ([]entities.Property, error) {
	return nil, nil
}
func (fakePropertyRepo) Update(*entities.Property) error { return nil }
func (fakePropertyRepo) Delete(string) error             { return nil }

func newListRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := usecases.NewPropertyStore(
		fakePropertyRepo{},
		usecases.NewWishlistUseCase(&fakeListRepo{rows: map[string]*entities.ListRow{}}),
		usecases.NewCompareUseCase(&fakeListRepo{rows: map[string]*entities.ListRow{}}),
		cache.NewPropertyCache(time.Minute),
		nil,
		ws.NewManager(),
	)
	handler := NewListHandler(store)

	r := gin.New()
	authed := r.Group("/api/v1", func(c *gin.Context) {
		c.Set("user_id", "user-1")
	})
	lists := authed.Group("/lists/:list")
	{
		lists.GET("", handler.Get)
		lists.POST("/membership", handler.Membership)
		lists.GET("/contains/:propertyId", handler.Contains)
		lists.POST("/:propertyId", handler.Add)
		lists.DELETE("/:propertyId", handler.Remove)
	}
	return r
}

func do(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWishlistAddAndGet(t *testing.T) {
	r := newListRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/lists/wishlist/p1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var addResp struct {
		Added    bool `json:"added"`
		Capacity int  `json:"capacity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &addResp))
	assert.True(t, addResp.Added)
	assert.Equal(t, usecases.WishlistCapacity, addResp.Capacity)

	w = do(t, r, http.MethodGet, "/api/v1/lists/wishlist", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var getResp struct {
		Data  []string `json:"data"`
		Count int      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &getResp))
	assert.Equal(t, []string{"p1"}, getResp.Data)
	assert.Equal(t, 1, getResp.Count)
}

func TestCompareAddReportsFullList(t *testing.T) {
	r := newListRouter(t)

	for i := 0; i < usecases.CompareCapacity; i++ {
		w := do(t, r, http.MethodPost, fmt.Sprintf("/api/v1/lists/compare/p%d", i), nil)
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(t, r, http.MethodPost, "/api/v1/lists/compare/p-extra", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Added    bool `json:"added"`
		Capacity int  `json:"capacity"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Added)
	assert.Equal(t, usecases.CompareCapacity, resp.Capacity)
}

func TestListsAreIndependent(t *testing.T) {
	r := newListRouter(t)

	do(t, r, http.MethodPost, "/api/v1/lists/wishlist/p1", nil)

	w := do(t, r, http.MethodGet, "/api/v1/lists/compare", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp.Count)
}

func TestRemoveIsAlwaysOK(t *testing.T) {
	r := newListRouter(t)

	// removing from a list that was never created still responds 200
	w := do(t, r, http.MethodDelete, "/api/v1/lists/wishlist/p1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestContains(t *testing.T) {
	r := newListRouter(t)
	do(t, r, http.MethodPost, "/api/v1/lists/wishlist/p1", nil)

	w := do(t, r, http.MethodGet, "/api/v1/lists/wishlist/contains/p1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"member":true`)

	w = do(t, r, http.MethodGet, "/api/v1/lists/wishlist/contains/p2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"member":false`)
}

func TestMembershipBatch(t *testing.T) {
	r := newListRouter(t)
	do(t, r, http.MethodPost, "/api/v1/lists/wishlist/p1", nil)
	do(t, r, http.MethodPost, "/api/v1/lists/wishlist/p3", nil)

	w := do(t, r, http.MethodPost, "/api/v1/lists/wishlist/membership",
		map[string][]string{"property_ids": {"p1", "p2", "p3"}})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data map[string]bool `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, map[string]bool{"p1": true, "p2": false, "p3": true}, resp.Data)
}

func TestMembershipRejectsBadBody(t *testing.T) {
	r := newListRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/lists/wishlist/membership", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
