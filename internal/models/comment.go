package models

import (
	"time"

	"github.com/google/uuid"
)

// Comment is a text comment on a video.
type Comment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	VideoID   uuid.UUID `db:"video_id" json:"videoId"`
	OwnerID   uuid.UUID `db:"owner_id" json:"ownerId"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// CommentWithAuthor is a comment joined with its author's identity for
// listing under a video.
type CommentWithAuthor struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	Username  string    `db:"username" json:"username"`
	AvatarURL *string   `db:"avatar_url" json:"avatarUrl"`
}
