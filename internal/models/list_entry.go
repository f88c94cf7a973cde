// Package models contains data models for the movie service.
package models

import "time"

// List types a movie can be filed under. A movie occupies exactly one
// list per user at a time.
const (
	ListTypeFavorite  = "favorite"
	ListTypeWatchlist = "watchlist"
)

// ListEntry represents a movie on one of a user's lists. MovieID is the
// external catalog identifier; title and poster path are snapshotted at
// the time the movie is first added.
type ListEntry struct {
	ID         int64     `json:"id" gorm:"primaryKey"`
	UserID     int64     `json:"user_id" gorm:"uniqueIndex:idx_list_entries_user_movie;not null"`
	MovieID    int64     `json:"movie_id" gorm:"uniqueIndex:idx_list_entries_user_movie;not null"`
	Title      string    `json:"title" gorm:"not null"`
	PosterPath *string   `json:"poster_path"`
	ListType   string    `json:"list_type" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
	User       *User     `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the database table name for the ListEntry model.
func (ListEntry) TableName() string {
	return "list_entries"
}

// ValidListType reports whether t is a known list type.
func ValidListType(t string) bool {
	return t == ListTypeFavorite || t == ListTypeWatchlist
}
