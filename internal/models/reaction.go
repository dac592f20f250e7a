package models

import (
	"time"

	"github.com/google/uuid"
)

// TargetKind identifies which entity a reaction points at. A reaction
// always targets exactly one kind; the pair (kind, target id) is the
// tagged union stored in the reactions table.
type TargetKind string

const (
	TargetVideo   TargetKind = "video"
	TargetComment TargetKind = "comment"
	TargetTweet   TargetKind = "tweet"
)

// Valid reports whether k is one of the three known target kinds.
func (k TargetKind) Valid() bool {
	switch k {
	case TargetVideo, TargetComment, TargetTweet:
		return true
	}
	return false
}

// Reaction is a like from a user to a single target. At most one row
// exists per (user_id, target_kind, target_id); the unique constraint
// in the reactions table enforces it.
type Reaction struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	UserID     uuid.UUID  `db:"user_id" json:"userId"`
	TargetKind TargetKind `db:"target_kind" json:"targetKind"`
	TargetID   uuid.UUID  `db:"target_id" json:"targetId"`
	CreatedAt  time.Time  `db:"created_at" json:"createdAt"`
}

// ReactionState is the outcome of a toggle.
type ReactionState string

const (
	StateLiked   ReactionState = "liked"
	StateUnliked ReactionState = "unliked"
)
