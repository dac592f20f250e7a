package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"vidtube/internal/apierr"
	"vidtube/internal/models"
)

type toggleReactionResponse struct {
	State    models.ReactionState `json:"state"`
	Reaction *models.Reaction     `json:"reaction"`
}

// ToggleVideoLike flips the caller's like on a video.
func (h *Handlers) ToggleVideoLike(w http.ResponseWriter, r *http.Request) {
	h.toggleReaction(w, r, "videoId", models.TargetVideo, h.store.VideoExists, "Video not found")
}

// ToggleCommentLike flips the caller's like on a comment.
func (h *Handlers) ToggleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggleReaction(w, r, "commentId", models.TargetComment, h.store.CommentExists, "Comment not found")
}

// ToggleTweetLike flips the caller's like on a tweet.
func (h *Handlers) ToggleTweetLike(w http.ResponseWriter, r *http.Request) {
	h.toggleReaction(w, r, "tweetId", models.TargetTweet, h.store.TweetExists, "Tweet not found")
}

func (h *Handlers) toggleReaction(w http.ResponseWriter, r *http.Request, varName string, kind models.TargetKind, exists func(uuid.UUID) (bool, error), missing string) {
	targetID, err := pathID(r, varName)
	if err != nil {
		fail(w, err)
		return
	}

	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	ok, err := exists(targetID)
	if err != nil {
		fail(w, err)
		return
	}
	if !ok {
		fail(w, apierr.NotFound(missing))
		return
	}

	state, reaction, err := h.store.ToggleReaction(user.ID, kind, targetID)
	if err != nil {
		fail(w, err)
		return
	}

	message := "Liked successfully"
	if state == models.StateUnliked {
		message = "Unliked successfully"
	}
	respond(w, http.StatusOK, toggleReactionResponse{State: state, Reaction: reaction}, message)
}

// GetLikedVideos lists the videos the caller has liked.
func (h *Handlers) GetLikedVideos(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	videos, err := h.store.ListLikedVideos(user.ID)
	if err != nil {
		fail(w, err)
		return
	}
	if len(videos) == 0 {
		fail(w, apierr.NotFound("No liked videos found"))
		return
	}

	respond(w, http.StatusOK, videos, "List of liked videos")
}
