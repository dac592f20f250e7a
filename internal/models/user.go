package models

import (
	"time"

	"github.com/google/uuid"
)

// User is an identity row. Registration and credential handling live in
// the external auth service; this core only reads users for joins and
// treats a user id as a channel id.
type User struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Username  string    `db:"username" json:"username"`
	AvatarURL *string   `db:"avatar_url" json:"avatarUrl"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}
