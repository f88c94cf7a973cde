package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/models"
)

// ListRepository defines the interface for list-membership operations.
type ListRepository interface {
	Upsert(ctx context.Context, entry *models.ListEntry) (*models.ListEntry, error)
	Delete(ctx context.Context, userID, movieID int64) (int64, error)
	FindByUser(ctx context.Context, userID int64) ([]models.ListEntry, error)
}

type listRepository struct {
	db *gorm.DB
}

// NewListRepository creates a new ListRepository instance.
func NewListRepository(db *gorm.DB) ListRepository {
	return &listRepository{db: db}
}

// Upsert inserts the entry, or when a row already exists for
// (user_id, movie_id) updates only its list_type. The original title and
// poster path are kept. The conditional insert-or-update is a single
// statement so concurrent adds of the same movie cannot create
// duplicate rows.
func (r *listRepository) Upsert(ctx context.Context, entry *models.ListEntry) (*models.ListEntry, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "movie_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"list_type": entry.ListType,
		}),
	}).Create(entry).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert list entry: %w", err)
	}

	// Read back the stored row: on the conflict path the returned struct
	// does not reflect the preserved title/poster or the existing id.
	var stored models.ListEntry
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", entry.UserID, entry.MovieID).
		First(&stored).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read back list entry: %w", err)
	}
	return &stored, nil
}

// Delete removes the entry for (user_id, movie_id) and returns the
// number of rows deleted.
func (r *listRepository) Delete(ctx context.Context, userID, movieID int64) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND movie_id = ?", userID, movieID).
		Delete(&models.ListEntry{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete list entry: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// FindByUser returns all entries for the user in insertion order.
func (r *listRepository) FindByUser(ctx context.Context, userID int64) ([]models.ListEntry, error) {
	var entries []models.ListEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for user %d: %w", userID, err)
	}
	return entries, nil
}
