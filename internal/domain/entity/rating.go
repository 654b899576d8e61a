// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating value bounds. Values outside this range are rejected before any
// storage access.
const (
	MinRatingValue = 1
	MaxRatingValue = 5
)

// Rating represents one user's rating of one store. The (UserID, StoreID)
// pair is unique: rating the same store again replaces the previous value
// rather than creating a second row.
type Rating struct {
	ID        uuid.UUID // The unique identifier for this rating row.
	UserID    uuid.UUID // The rating user.
	StoreID   uuid.UUID // The rated store account.
	Value     int       // Star value in [1,5].
	Comment   string    // Optional free-text comment.
	CreatedAt time.Time // When the rating was first submitted.
	UpdatedAt time.Time // Bumped when the user re-rates.
}

// RatingSummary is the derived aggregate for a store. It is never persisted;
// it is recomputed from the rating rows on every read, so it is trivially
// consistent with the last write. Average is 0 when Count is 0.
type RatingSummary struct {
	Count   int64
	Average float64
}

// StoreListing is the read model shown to rating users and administrators:
// a store account together with its current aggregate.
type StoreListing struct {
	ID      uuid.UUID
	Name    string
	Email   string
	Address string
	Summary RatingSummary
}

// StoreRating is the read model for the store dashboard: one rating row
// joined with the rater's identity.
type StoreRating struct {
	UserID    uuid.UUID
	UserEmail string
	Value     int
	Comment   string
	CreatedAt time.Time
}
