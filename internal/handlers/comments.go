package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"vidtube/internal/apierr"
	"vidtube/internal/models"
)

type commentRequest struct {
	Content string `json:"content"`
}

// GetVideoComments lists comments under a video, newest first, with the
// author identity joined in.
func (h *Handlers) GetVideoComments(w http.ResponseWriter, r *http.Request) {
	videoID, err := pathID(r, "videoId")
	if err != nil {
		fail(w, err)
		return
	}

	page, limit := pagination(r)
	comments, err := h.store.ListVideoComments(videoID, page, limit)
	if err != nil {
		fail(w, err)
		return
	}
	if comments == nil {
		comments = []models.CommentWithAuthor{}
	}

	respond(w, http.StatusOK, comments, "Comments fetched successfully")
}

// AddComment creates a comment on a video.
func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	videoID, err := pathID(r, "videoId")
	if err != nil {
		fail(w, err)
		return
	}

	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	exists, err := h.store.VideoExists(videoID)
	if err != nil {
		fail(w, err)
		return
	}
	if !exists {
		fail(w, apierr.NotFound("Video not found"))
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, apierr.Validation("Malformed request body"))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		fail(w, apierr.Validation("Content is required"))
		return
	}

	comment, err := h.store.CreateComment(videoID, user.ID, req.Content)
	if err != nil {
		fail(w, err)
		return
	}

	respond(w, http.StatusCreated, comment, "Comment added")
}

// UpdateComment edits the caller's own comment.
func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentId")
	if err != nil {
		fail(w, err)
		return
	}

	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, apierr.Validation("Malformed request body"))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		fail(w, apierr.Validation("Content is required"))
		return
	}

	comment, err := h.store.UpdateComment(commentID, user.ID, req.Content)
	if err != nil {
		fail(w, apierr.From(err, "Comment not found"))
		return
	}

	respond(w, http.StatusOK, comment, "Comment updated")
}

// DeleteComment removes the caller's own comment.
func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, err := pathID(r, "commentId")
	if err != nil {
		fail(w, err)
		return
	}

	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	comment, err := h.store.DeleteComment(commentID, user.ID)
	if err != nil {
		fail(w, apierr.From(err, "Comment not found"))
		return
	}

	respond(w, http.StatusOK, comment, "Comment deleted")
}
