package tasks

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

const (
	TypeVideoCleanup   = "video:cleanup"
	TypePrunePlaylists = "playlists:prune"
)

// VideoCleanupTaskPayload identifies a deleted video whose dependent
// rows (reactions, comments, playlist entries) must be removed.
type VideoCleanupTaskPayload struct {
	VideoID uuid.UUID
}

func NewVideoCleanupTask(videoID uuid.UUID) (*asynq.Task, error) {
	payload, err := json.Marshal(VideoCleanupTaskPayload{VideoID: videoID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeVideoCleanup, payload), nil
}

// NewPrunePlaylistsTask builds the periodic reconciliation task that
// drops playlist entries pointing at videos that no longer exist.
func NewPrunePlaylistsTask() (*asynq.Task, error) {
	return asynq.NewTask(TypePrunePlaylists, nil), nil
}
