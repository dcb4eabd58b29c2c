package usecases

import (
	"errors"

	"estate-server/entities"
	"estate-server/repositories"

	"gorm.io/gorm"
)

const (
	WishlistCapacity = 15
	CompareCapacity  = 5
)

// ListUseCase maintains one user's bounded, deduplicated sequence of
// property ids against a single array-valued row per user. Two instances
// exist: wishlist (capacity 15) and compare (capacity 5).
type ListUseCase struct {
	repo     repositories.ListRepository
	capacity int
}

func NewWishlistUseCase(repo repositories.ListRepository) *ListUseCase {
	return &ListUseCase{repo: repo, capacity: WishlistCapacity}
}

func NewCompareUseCase(repo repositories.ListRepository) *ListUseCase {
	return &ListUseCase{repo: repo, capacity: CompareCapacity}
}

func (uc *ListUseCase) Capacity() int { return uc.capacity }

// GetList returns the user's property ids in insertion order. A missing
// row is an empty list, not an error; any other fetch failure propagates.
func (uc *ListUseCase) GetList(userID string) ([]string, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	row, err := uc.repo.Get(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return row.IDs(), nil
}

// AddItems merges propertyIDs into the user's list, preserving first-seen
// order and suppressing duplicates, then upserts the row. The capacity
// check happens here, in the same operation as the write, so a caller
// cannot race a separate length check against the mutation. Adding ids
// that are already present never fails, even at capacity.
func (uc *ListUseCase) AddItems(userID string, propertyIDs []string) ([]string, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	row, err := uc.repo.Get(userID)
	var current []string
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		current = []string{}
		row = &entities.ListRow{UserID: userID}
	case err != nil:
		return nil, err
	default:
		current = row.IDs()
	}

	union := current
	seen := make(map[string]struct{}, len(current))
	for _, id := range current {
		seen[id] = struct{}{}
	}
	for _, id := range propertyIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		union = append(union, id)
		seen[id] = struct{}{}
	}

	if len(union) > uc.capacity {
		return current, ErrListFull
	}
	if len(union) == len(current) {
		// Nothing new; skip the write.
		return current, nil
	}

	row.SetIDs(union)
	if err := uc.repo.Upsert(row); err != nil {
		return nil, err
	}
	return union, nil
}

// RemoveItems filters propertyIDs out of the user's list and writes the
// result back. Unlike AddItems a missing row is an error here: there is
// nothing to remove from. Non-member ids are no-ops.
func (uc *ListUseCase) RemoveItems(userID string, propertyIDs []string) ([]string, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}

	row, err := uc.repo.Get(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoList
	}
	if err != nil {
		return nil, err
	}

	drop := make(map[string]struct{}, len(propertyIDs))
	for _, id := range propertyIDs {
		drop[id] = struct{}{}
	}

	current := row.IDs()
	filtered := make([]string, 0, len(current))
	for _, id := range current {
		if _, ok := drop[id]; !ok {
			filtered = append(filtered, id)
		}
	}

	row.SetIDs(filtered)
	if err := uc.repo.Update(row); err != nil {
		return nil, err
	}
	return filtered, nil
}

// ItemExists reports list membership. A missing row reads as false.
func (uc *ListUseCase) ItemExists(userID, propertyID string) (bool, error) {
	ids, err := uc.GetList(userID)
	if err != nil {
		return false, err
	}
	for _, id := range ids {
		if id == propertyID {
			return true, nil
		}
	}
	return false, nil
}

// Membership answers the batched form of ItemExists: one fetch for a
// whole page of property cards instead of one per card.
func (uc *ListUseCase) Membership(userID string, propertyIDs []string) (map[string]bool, error) {
	ids, err := uc.GetList(userID)
	if err != nil {
		return nil, err
	}
	member := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		member[id] = struct{}{}
	}
	result := make(map[string]bool, len(propertyIDs))
	for _, id := range propertyIDs {
		_, ok := member[id]
		result[id] = ok
	}
	return result, nil
}
