package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"vidtube/internal/apierr"
	"vidtube/pkg/tasks"
)

// feedRequest is the optional body of the feed endpoint. The exclusion
// set is accumulated client-side; the server keeps no session cursor.
type feedRequest struct {
	SeenVideoIDs []string `json:"seenVideoIds"`
}

// GetVideos serves the feed. A non-empty query selects search mode
// (published, title/description match, newest first, paginated);
// otherwise discovery mode draws a random sample excluding the ids the
// caller has already seen.
func (h *Handlers) GetVideos(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("query"))

	if query != "" {
		page, limit := pagination(r)
		videos, err := h.store.SearchVideos(query, page, limit)
		if err != nil {
			fail(w, err)
			return
		}
		if len(videos) == 0 {
			fail(w, apierr.NotFound("No videos found matching your search"))
			return
		}
		respond(w, http.StatusOK, videos, "Videos fetched successfully")
		return
	}

	var req feedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		fail(w, apierr.Validation("Malformed request body"))
		return
	}

	seen := make([]uuid.UUID, 0, len(req.SeenVideoIDs))
	for _, raw := range req.SeenVideoIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			fail(w, apierr.Validation("Invalid video id in seenVideoIds"))
			return
		}
		seen = append(seen, id)
	}

	videos, err := h.store.DiscoverVideos(seen)
	if err != nil {
		fail(w, err)
		return
	}
	if len(videos) == 0 {
		fail(w, apierr.NotFound("No videos found matching your search"))
		return
	}

	respond(w, http.StatusOK, videos, "Videos fetched successfully")
}

type createVideoRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	VideoURL        string `json:"videoUrl"`
	ThumbnailURL    string `json:"thumbnailUrl"`
	DurationSeconds int    `json:"durationSeconds"`
}

// CreateVideo registers uploaded video metadata. The media itself is
// uploaded out of band; the URLs arrive as opaque references.
func (h *Handlers) CreateVideo(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	var req createVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, apierr.Validation("Malformed request body"))
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		fail(w, apierr.Validation("Title and description are required"))
		return
	}
	if req.VideoURL == "" || req.ThumbnailURL == "" {
		fail(w, apierr.Validation("Video and thumbnail references are required"))
		return
	}

	video, err := h.store.CreateVideo(user.ID, req.Title, req.Description, req.VideoURL, req.ThumbnailURL, req.DurationSeconds)
	if err != nil {
		fail(w, err)
		return
	}

	respond(w, http.StatusCreated, video, "Video uploaded successfully")
}

// GetVideo returns a single video's full record.
func (h *Handlers) GetVideo(w http.ResponseWriter, r *http.Request) {
	videoID, err := pathID(r, "videoId")
	if err != nil {
		fail(w, err)
		return
	}

	video, err := h.store.GetVideo(videoID)
	if err != nil {
		fail(w, apierr.From(err, "No video found matching your videoId"))
		return
	}

	respond(w, http.StatusOK, video, "Video found")
}

type updateVideoRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnailUrl"`
}

// UpdateVideo changes title, description and thumbnail of an owned video.
func (h *Handlers) UpdateVideo(w http.ResponseWriter, r *http.Request) {
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

	var req updateVideoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, apierr.Validation("Malformed request body"))
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		fail(w, apierr.Validation("Title and description are required"))
		return
	}

	video, err := h.store.UpdateVideo(videoID, user.ID, req.Title, req.Description, req.ThumbnailURL)
	if err != nil {
		fail(w, apierr.From(err, "Video not found"))
		return
	}

	respond(w, http.StatusOK, video, "Video successfully updated")
}

// DeleteVideo removes an owned video and enqueues cleanup of its
// reactions, comments and playlist memberships.
func (h *Handlers) DeleteVideo(w http.ResponseWriter, r *http.Request) {
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

	video, err := h.store.DeleteVideo(videoID, user.ID)
	if err != nil {
		fail(w, apierr.From(err, "Video not found"))
		return
	}

	task, err := tasks.NewVideoCleanupTask(video.ID)
	if err != nil {
		log.Printf("Error creating cleanup task for video %s: %v", video.ID, err)
	} else if _, err := h.asynqClient.Enqueue(task); err != nil {
		log.Printf("Error enqueuing cleanup task for video %s: %v", video.ID, err)
	}

	respond(w, http.StatusOK, video, "Video deleted successfully")
}

// TogglePublish flips the published flag of an owned video.
func (h *Handlers) TogglePublish(w http.ResponseWriter, r *http.Request) {
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

	published, err := h.store.TogglePublish(videoID, user.ID)
	if err != nil {
		fail(w, apierr.From(err, "Video not found"))
		return
	}

	respond(w, http.StatusOK, map[string]bool{"isPublished": published}, "Publish status toggled successfully")
}
