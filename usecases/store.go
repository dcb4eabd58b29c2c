package usecases

import (
	"context"
	"errors"
	"log"
	"strconv"
	"sync"
	"time"

	"estate-server/cache"
	"estate-server/entities"
	"estate-server/repositories"
	"estate-server/ws"

	"gorm.io/gorm"
)

// PropertyStore is the single facade presentation code uses to read
// properties and to mutate wishlist/compare membership. It caches
// property reads, keeps a last-error string the way the browser app kept
// shared error state, and publishes a typed event after every list
// mutation settles, success or failure, so other open sessions re-fetch.
type PropertyStore struct {
	properties repositories.PropertyRepository
	wishlist   *ListUseCase
	compare    *ListUseCase
	cache      *cache.PropertyCache
	rdb        *cache.RedisCache
	events     *ws.Manager

	mu      sync.RWMutex
	lastErr string
}

func NewPropertyStore(
	properties repositories.PropertyRepository,
	wishlist *ListUseCase,
	compare *ListUseCase,
	propertyCache *cache.PropertyCache,
	rdb *cache.RedisCache,
	events *ws.Manager,
) *PropertyStore {
	return &PropertyStore{
		properties: properties,
		wishlist:   wishlist,
		compare:    compare,
		cache:      propertyCache,
		rdb:        rdb,
		events:     events,
	}
}

func (s *PropertyStore) recordError(err error) {
	s.mu.Lock()
	s.lastErr = err.Error()
	s.mu.Unlock()
	log.Printf("property store: %v", err)
}

// LastError returns the most recent recorded failure, "" if none.
func (s *PropertyStore) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *PropertyStore) ClearError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

// GetPropertyByID returns the property or nil. "Not found" is absence,
// not an error; genuine fetch failures are recorded, not returned.
func (s *PropertyStore) GetPropertyByID(id string) *entities.Property {
	if p, ok := s.cache.Get(id); ok {
		return p
	}

	p, err := s.properties.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	if err != nil {
		s.recordError(err)
		return nil
	}

	s.cache.Set(*p)
	return p
}

// Search runs a filtered listing query, serving repeats from the redis
// result cache for a short window.
func (s *PropertyStore) Search(ctx context.Context, q repositories.PropertySearch) ([]entities.Property, error) {
	key := cache.QueryKey("properties:search", map[string]string{
		"location":     q.Location,
		"max_price":    fmtFloat(q.MaxPrice),
		"min_bedrooms": fmtInt(q.MinBedrooms),
		"limit":        fmtInt(q.Limit),
	})

	if s.rdb != nil {
		var cached []entities.Property
		if hit, err := s.rdb.GetCached(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	properties, err := s.properties.Search(q)
	if err != nil {
		s.recordError(err)
		return nil, err
	}

	if s.rdb != nil {
		if err := s.rdb.SetCached(ctx, key, properties, 5*time.Minute); err != nil {
			log.Printf("property store: search cache write: %v", err)
		}
	}
	return properties, nil
}

// AddToWishlist adds one property for the user. Returns false without an
// error when there is no session (empty userID) or the list is full; the
// caller surfaces "list full" messaging. A wishlist_updated event is
// published after the call settles either way.
func (s *PropertyStore) AddToWishlist(userID, propertyID string) (bool, error) {
	return s.addToList(s.wishlist, ws.EventWishlistUpdated, userID, propertyID)
}

// AddToCompare is AddToWishlist with capacity 5.
func (s *PropertyStore) AddToCompare(userID, propertyID string) (bool, error) {
	return s.addToList(s.compare, ws.EventCompareUpdated, userID, propertyID)
}

func (s *PropertyStore) addToList(list *ListUseCase, eventType, userID, propertyID string) (bool, error) {
	if userID == "" {
		return false, nil
	}
	defer s.events.Publish(userID, ws.Event{Type: eventType, PropertyID: propertyID})

	_, err := list.AddItems(userID, []string{propertyID})
	if errors.Is(err, ErrListFull) {
		return false, nil
	}
	if err != nil {
		s.recordError(err)
		return false, err
	}
	return true, nil
}

// RemoveFromWishlist is best-effort: failures are recorded, not returned.
func (s *PropertyStore) RemoveFromWishlist(userID, propertyID string) {
	s.removeFromList(s.wishlist, ws.EventWishlistUpdated, userID, propertyID)
}

func (s *PropertyStore) RemoveFromCompare(userID, propertyID string) {
	s.removeFromList(s.compare, ws.EventCompareUpdated, userID, propertyID)
}

func (s *PropertyStore) removeFromList(list *ListUseCase, eventType, userID, propertyID string) {
	if userID == "" {
		return
	}
	defer s.events.Publish(userID, ws.Event{Type: eventType, PropertyID: propertyID})

	if _, err := list.RemoveItems(userID, []string{propertyID}); err != nil && !errors.Is(err, ErrNoList) {
		s.recordError(err)
	}
}

// IsInWishlist reports membership; an anonymous caller is never a member.
func (s *PropertyStore) IsInWishlist(userID, propertyID string) bool {
	return s.isInList(s.wishlist, userID, propertyID)
}

func (s *PropertyStore) IsInCompareList(userID, propertyID string) bool {
	return s.isInList(s.compare, userID, propertyID)
}

func (s *PropertyStore) isInList(list *ListUseCase, userID, propertyID string) bool {
	if userID == "" {
		return false
	}
	ok, err := list.ItemExists(userID, propertyID)
	if err != nil {
		s.recordError(err)
		return false
	}
	return ok
}

// WishlistMembership answers membership for a batch of ids in one fetch.
func (s *PropertyStore) WishlistMembership(userID string, propertyIDs []string) (map[string]bool, error) {
	return s.wishlist.Membership(userID, propertyIDs)
}

func (s *PropertyStore) CompareMembership(userID string, propertyIDs []string) (map[string]bool, error) {
	return s.compare.Membership(userID, propertyIDs)
}

// Wishlist and Compare expose the underlying lists for read endpoints.
func (s *PropertyStore) Wishlist() *ListUseCase { return s.wishlist }
func (s *PropertyStore) Compare() *ListUseCase  { return s.compare }

// CacheStats surfaces the in-memory property cache counters.
func (s *PropertyStore) CacheStats() map[string]interface{} {
	return s.cache.Stats()
}

// InvalidateProperty drops a property from the cache after a mutation.
func (s *PropertyStore) InvalidateProperty(id string) {
	s.cache.Invalidate(id)
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func fmtInt(i int) string {
	return strconv.Itoa(i)
}
