package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
	"vidtube/internal/db"
	"vidtube/internal/models"
	"vidtube/pkg/tasks"
)

type TaskHandler struct {
	store *db.Store
}

func NewTaskHandler(store *db.Store) *TaskHandler {
	return &TaskHandler{store: store}
}

// HandleVideoCleanupTask removes everything dependent on a deleted
// video: reactions on the video, reactions on its comments, the
// comments themselves and its playlist memberships. Each step is a
// single statement, so a retry after partial completion is harmless.
func (h *TaskHandler) HandleVideoCleanupTask(ctx context.Context, t *asynq.Task) error {
	var p tasks.VideoCleanupTaskPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return fmt.Errorf("failed to unmarshal task payload: %w", err)
	}

	log.Printf("Cleaning up after deleted video %s", p.VideoID)

	commentLikes, err := h.store.DeleteReactionsForVideoComments(p.VideoID)
	if err != nil {
		return fmt.Errorf("failed to delete comment reactions for video %s: %w", p.VideoID, err)
	}

	videoLikes, err := h.store.DeleteReactionsForTarget(models.TargetVideo, p.VideoID)
	if err != nil {
		return fmt.Errorf("failed to delete reactions for video %s: %w", p.VideoID, err)
	}

	comments, err := h.store.DeleteCommentsForVideo(p.VideoID)
	if err != nil {
		return fmt.Errorf("failed to delete comments for video %s: %w", p.VideoID, err)
	}

	playlistEntries, err := h.store.RemoveVideoFromAllPlaylists(p.VideoID)
	if err != nil {
		return fmt.Errorf("failed to remove playlist entries for video %s: %w", p.VideoID, err)
	}

	log.Printf("Cleanup for video %s: %d video likes, %d comment likes, %d comments, %d playlist entries",
		p.VideoID, videoLikes, commentLikes, comments, playlistEntries)
	return nil
}

// HandlePrunePlaylistsTask is the periodic reconciliation pass for
// playlist entries whose video disappeared without a cleanup task (for
// example when the cleanup queue was drained after a crash).
func (h *TaskHandler) HandlePrunePlaylistsTask(ctx context.Context, t *asynq.Task) error {
	pruned, err := h.store.PruneDanglingPlaylistEntries()
	if err != nil {
		return fmt.Errorf("failed to prune dangling playlist entries: %w", err)
	}

	if pruned > 0 {
		log.Printf("Pruned %d dangling playlist entries", pruned)
	}
	return nil
}
