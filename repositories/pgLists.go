package repositories

import (
	"time"

	"estate-server/db"
	"estate-server/entities"

	"gorm.io/gorm/clause"
)

// listPgRepository serves one of the two list tables; the wishlist and
// compare stores differ only in table name.
type listPgRepository struct {
	db    db.Database
	table string
}

func NewWishlistPgRepository(database db.Database) ListRepository {
	return &listPgRepository{db: database, table: "wishlists"}
}

func NewComparePgRepository(database db.Database) ListRepository {
	return &listPgRepository{db: database, table: "compares"}
}

func (r *listPgRepository) Get(userID string) (*entities.ListRow, error) {
	var row entities.ListRow
	err := r.db.GetDB().Table(r.table).Where("user_id = ?", userID).First(&row).Error
	if err != nil {
		// ErrRecordNotFound passes through; callers decide whether
		// absence means "empty list" or a real failure.
		return nil, err
	}
	return &row, nil
}

func (r *listPgRepository) Upsert(row *entities.ListRow) error {
	now := time.Now().UTC().Format(time.RFC3339)
	if row.CreatedAt == "" {
		row.CreatedAt = now
	}
	row.UpdatedAt = now
	return r.db.GetDB().Table(r.table).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"property_ids", "updated_at"}),
	}).Create(row).Error
}

func (r *listPgRepository) Update(row *entities.ListRow) error {
	row.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.db.GetDB().Table(r.table).Where("user_id = ?", row.UserID).Updates(map[string]interface{}{
		"property_ids": row.PropertyIDs,
		"updated_at":   row.UpdatedAt,
	}).Error
}
