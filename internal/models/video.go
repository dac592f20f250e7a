package models

import (
	"time"

	"github.com/google/uuid"
)

// Video is an uploaded video's metadata. The binary itself lives behind
// the opaque VideoURL/ThumbnailURL references; upload and storage are
// handled outside this service.
type Video struct {
	ID              uuid.UUID `db:"id" json:"id"`
	OwnerID         uuid.UUID `db:"owner_id" json:"ownerId"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	ThumbnailURL    string    `db:"thumbnail_url" json:"thumbnailUrl"`
	VideoURL        string    `db:"video_url" json:"videoUrl"`
	DurationSeconds int       `db:"duration_seconds" json:"durationSeconds"`
	Views           int64     `db:"views" json:"views"`
	IsPublished     bool      `db:"is_published" json:"isPublished"`
	CreatedAt       time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `db:"updated_at" json:"updatedAt"`
}

// VideoSummary is the display projection served by feeds and listings.
// The playable media URL is not part of it.
type VideoSummary struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Title           string    `db:"title" json:"title"`
	Description     string    `db:"description" json:"description"`
	ThumbnailURL    string    `db:"thumbnail_url" json:"thumbnailUrl"`
	DurationSeconds int       `db:"duration_seconds" json:"durationSeconds"`
	Views           int64     `db:"views" json:"views"`
}
