package domain

import "time"

// Bookmark is a saved link owned by exactly one user.
// Ownership is fixed at creation and never transfers.
type Bookmark struct {
	// ID is the generated unique identifier.
	ID int64 `json:"id"`

	// UserID is the owning user. Every mutation must be scoped to it.
	UserID int64 `json:"userId"`

	// Title is a required, human-readable label.
	Title string `json:"title"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Link is the bookmarked URI.
	Link string `json:"link"`

	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is bumped on any mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}
