package models

import (
	"time"

	"github.com/google/uuid"
)

// Playlist is a named ordered collection of video references. Videos
// are attached through the playlist_videos join table; an entry whose
// video was deleted is filtered at read time and pruned asynchronously.
type Playlist struct {
	ID          uuid.UUID `db:"id" json:"id"`
	OwnerID     uuid.UUID `db:"owner_id" json:"ownerId"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// EnrichedPlaylist is a playlist with its resolvable videos embedded.
type EnrichedPlaylist struct {
	Playlist
	Videos []Video `json:"videos"`
}
