package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"estate-server/cache"
	"estate-server/entities"
	"estate-server/repositories"
	"estate-server/ws"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockPropertyRepo struct {
	properties map[string]*entities.Property
	getCalls   int
	failGet    error
	failSearch error
}

func newMockPropertyRepo() *mockPropertyRepo {
	return &mockPropertyRepo{properties: make(map[string]*entities.Property)}
}

func (m *mockPropertyRepo) Create(p *entities.Property) error {
	copied := *p
	m.properties[p.ID] = &copied
	return nil
}

func (m *mockPropertyRepo) GetByID(id string) (*entities.Property, error) {
	m.getCalls++
	if m.failGet != nil {
		return nil, m.failGet
	}
	p, ok := m.properties[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (m *mockPropertyRepo) GetAll() ([]entities.Property, error) {
	result := make([]entities.Property, 0, len(m.properties))
	for _, p := range m.properties {
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPropertyRepo) GetByDeveloperID(developerID string) ([]entities.Property, error) {
	var result []entities.Property
	for _, p := range m.properties {
		if p.DeveloperID == developerID {
			result = append(result, *p)
		}
	}
	return result, nil
}

func (m *mockPropertyRepo) Search(q repositories.PropertySearch) ([]entities.Property, error) {
	if m.failSearch != nil {
		return nil, m.failSearch
	}
	var result []entities.Property
	for _, p := range m.properties {
		if q.Location != "" && p.Location != q.Location {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockPropertyRepo) Update(p *entities.Property) error {
	copied := *p
	m.properties[p.ID] = &copied
	return nil
}

func (m *mockPropertyRepo) Delete(id string) error {
	delete(m.properties, id)
	return nil
}

func newTestStore(t *testing.T) (*PropertyStore, *mockPropertyRepo, *mockListRepo, *mockListRepo) {
	t.Helper()
	props := newMockPropertyRepo()
	wishRepo := newMockListRepo()
	compRepo := newMockListRepo()
	store := NewPropertyStore(
		props,
		NewWishlistUseCase(wishRepo),
		NewCompareUseCase(compRepo),
		cache.NewPropertyCache(time.Minute),
		nil,
		ws.NewManager(),
	)
	return store, props, wishRepo, compRepo
}

func TestGetPropertyByIDServesRepeatsFromCache(t *testing.T) {
	store, props, _, _ := newTestStore(t)
	props.properties["p1"] = &entities.Property{ID: "p1", Title: "Skyline Towers"}

	first := store.GetPropertyByID("p1")
	require.NotNil(t, first)
	assert.Equal(t, "Skyline Towers", first.Title)

	second := store.GetPropertyByID("p1")
	require.NotNil(t, second)
	assert.Equal(t, 1, props.getCalls)
}

func TestGetPropertyByIDAbsenceIsNil(t *testing.T) {
	store, _, _, _ := newTestStore(t)

	assert.Nil(t, store.GetPropertyByID("missing"))
	assert.Empty(t, store.LastError())
}

func TestGetPropertyByIDRecordsFetchFailures(t *testing.T) {
	store, props, _, _ := newTestStore(t)
	props.failGet = errors.New("connection refused")

	assert.Nil(t, store.GetPropertyByID("p1"))
	assert.Contains(t, store.LastError(), "connection refused")

	store.ClearError()
	assert.Empty(t, store.LastError())
}

func TestAddToWishlist(t *testing.T) {
	store, _, _, _ := newTestStore(t)

	added, err := store.AddToWishlist("user-1", "p1")
	require.NoError(t, err)
	assert.True(t, added)

	assert.True(t, store.IsInWishlist("user-1", "p1"))
	assert.False(t, store.IsInCompareList("user-1", "p1"))
}

func TestAddToWishlistAnonymousIsNoop(t *testing.T) {
	store, _, wishRepo, _ := newTestStore(t)

	added, err := store.AddToWishlist("", "p1")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, wishRepo.rows)
}

func TestAddToWishlistFullListIsNotAnError(t *testing.T) {
	store, _, wishRepo, _ := newTestStore(t)
	full := make([]string, WishlistCapacity)
	for i := range full {
		full[i] = "p" + string(rune('a'+i))
	}
	seedList(wishRepo, "user-1", full)

	added, err := store.AddToWishlist("user-1", "p-new")
	require.NoError(t, err)
	assert.False(t, added)
	assert.Empty(t, store.LastError())
}

func TestAddToWishlistRecordsRepoFailures(t *testing.T) {
	store, _, wishRepo, _ := newTestStore(t)
	wishRepo.failGet = errors.New("connection refused")

	added, err := store.AddToWishlist("user-1", "p1")
	assert.Error(t, err)
	assert.False(t, added)
	assert.Contains(t, store.LastError(), "connection refused")
}

func TestAddToCompareCapsAtFive(t *testing.T) {
	store, _, _, _ := newTestStore(t)

	for i := 0; i < CompareCapacity; i++ {
		added, err := store.AddToCompare("user-1", "p"+string(rune('a'+i)))
		require.NoError(t, err)
		assert.True(t, added)
	}

	added, err := store.AddToCompare("user-1", "p-extra")
	require.NoError(t, err)
	assert.False(t, added)
}

func TestRemoveFromWishlistMissingListIsSilent(t *testing.T) {
	store, _, _, _ := newTestStore(t)

	store.RemoveFromWishlist("user-1", "p1")
	assert.Empty(t, store.LastError())
}

func TestRemoveFromWishlist(t *testing.T) {
	store, _, wishRepo, _ := newTestStore(t)
	seedList(wishRepo, "user-1", []string{"p1", "p2"})

	store.RemoveFromWishlist("user-1", "p1")
	assert.False(t, store.IsInWishlist("user-1", "p1"))
	assert.True(t, store.IsInWishlist("user-1", "p2"))
}

func TestMembershipAgreesWithItemChecks(t *testing.T) {
	store, _, wishRepo, _ := newTestStore(t)
	seedList(wishRepo, "user-1", []string{"p1", "p3"})

	result, err := store.WishlistMembership("user-1", []string{"p1", "p2", "p3"})
	require.NoError(t, err)
	for id, member := range result {
		assert.Equal(t, store.IsInWishlist("user-1", id), member, id)
	}
}

func TestSearchWithoutResultCache(t *testing.T) {
	store, props, _, _ := newTestStore(t)
	props.properties["p1"] = &entities.Property{ID: "p1", Location: "Pune"}
	props.properties["p2"] = &entities.Property{ID: "p2", Location: "Mumbai"}

	result, err := store.Search(context.Background(), repositories.PropertySearch{Location: "Pune"})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "p1", result[0].ID)
}

func TestSearchRecordsFailures(t *testing.T) {
	store, props, _, _ := newTestStore(t)
	props.failSearch = errors.New("timeout")

	_, err := store.Search(context.Background(), repositories.PropertySearch{})
	assert.Error(t, err)
	assert.Contains(t, store.LastError(), "timeout")
}

func TestInvalidatePropertyDropsCachedCopy(t *testing.T) {
	store, props, _, _ := newTestStore(t)
	props.properties["p1"] = &entities.Property{ID: "p1", Title: "Old"}

	require.NotNil(t, store.GetPropertyByID("p1"))
	props.properties["p1"].Title = "New"

	store.InvalidateProperty("p1")
	refreshed := store.GetPropertyByID("p1")
	require.NotNil(t, refreshed)
	assert.Equal(t, "New", refreshed.Title)
}
