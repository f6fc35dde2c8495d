package models

import "time"

// WishlistItem is a saved recommendation a user can rate.
type WishlistItem struct {
	ID        int64
	UserID    int64
	Title     string
	City      string
	Country   string
	ImageURL  string
	Tags      []string
	Rating    float64
	LastRated *time.Time
	CreatedAt time.Time
}
