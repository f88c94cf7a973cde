package service

import (
	"context"

	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/models"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/repository"
)

// UserLists holds a user's list entries partitioned by list type, in
// insertion order.
type UserLists struct {
	Favorites []models.ListEntry `json:"favorites"`
	Watchlist []models.ListEntry `json:"watchlist"`
}

// ListService manages list membership.
type ListService interface {
	GetLists(ctx context.Context, userID int64) (*UserLists, error)
	UpsertEntry(ctx context.Context, entry *models.ListEntry) (*models.ListEntry, error)
	RemoveEntry(ctx context.Context, userID, movieID int64) error
}

type listService struct {
	listRepo repository.ListRepository
}

// NewListService creates a new ListService instance.
func NewListService(listRepo repository.ListRepository) ListService {
	return &listService{listRepo: listRepo}
}

func (s *listService) GetLists(ctx context.Context, userID int64) (*UserLists, error) {
	entries, err := s.listRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	lists := &UserLists{
		Favorites: []models.ListEntry{},
		Watchlist: []models.ListEntry{},
	}
	for _, entry := range entries {
		switch entry.ListType {
		case models.ListTypeFavorite:
			lists.Favorites = append(lists.Favorites, entry)
		case models.ListTypeWatchlist:
			lists.Watchlist = append(lists.Watchlist, entry)
		}
	}
	return lists, nil
}

// UpsertEntry adds the movie to the given list, or moves an already
// filed movie to the new list type. Re-adding never duplicates the row
// and never overwrites the stored title or poster.
func (s *listService) UpsertEntry(ctx context.Context, entry *models.ListEntry) (*models.ListEntry, error) {
	return s.listRepo.Upsert(ctx, entry)
}

// RemoveEntry deletes the (user, movie) row. Removing a movie that is
// not on any list returns ErrEntryNotFound, including on a repeated
// removal.
func (s *listService) RemoveEntry(ctx context.Context, userID, movieID int64) error {
	deleted, err := s.listRepo.Delete(ctx, userID, movieID)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrEntryNotFound
	}
	return nil
}
