package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"vidtube/internal/apierr"
	"vidtube/internal/models"
)

type playlistRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	VideoID     string `json:"videoId,omitempty"`
}

// CreatePlaylist creates a playlist, optionally seeded with one video.
func (h *Handlers) CreatePlaylist(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	var req playlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, apierr.Validation("Malformed request body"))
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" {
		fail(w, apierr.Validation("Name and description required to create a playlist"))
		return
	}

	var seed *uuid.UUID
	if req.VideoID != "" {
		id, err := uuid.Parse(req.VideoID)
		if err != nil {
			fail(w, apierr.Validation("Invalid videoId"))
			return
		}
		seed = &id
	}

	playlist, err := h.store.CreatePlaylist(user.ID, req.Name, req.Description, seed)
	if err != nil {
		fail(w, err)
		return
	}

	respond(w, http.StatusCreated, playlist, "Playlist created successfully")
}

// GetUserPlaylists lists a user's playlists. Public read.
func (h *Handlers) GetUserPlaylists(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		fail(w, err)
		return
	}

	playlists, err := h.store.ListPlaylistsByOwner(userID)
	if err != nil {
		fail(w, err)
		return
	}
	if len(playlists) == 0 {
		fail(w, apierr.NotFound("Playlist not found"))
		return
	}

	respond(w, http.StatusOK, playlists, "User playlists found successfully")
}

// GetPlaylist returns a playlist with its resolvable videos embedded.
func (h *Handlers) GetPlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID, err := pathID(r, "playlistId")
	if err != nil {
		fail(w, err)
		return
	}

	playlist, err := h.store.GetPlaylist(playlistID)
	if err != nil {
		fail(w, apierr.From(err, "Playlist not found"))
		return
	}
	if playlist.Videos == nil {
		playlist.Videos = []models.Video{}
	}

	respond(w, http.StatusOK, playlist, "Playlist found successfully")
}

// AddVideoToPlaylist attaches a video to an owned playlist. Re-adding is
// a no-op.
func (h *Handlers) AddVideoToPlaylist(w http.ResponseWriter, r *http.Request) {
	h.modifyPlaylistVideo(w, r, h.store.AddVideoToPlaylist, "Video added to playlist successfully")
}

// RemoveVideoFromPlaylist detaches a video from an owned playlist.
func (h *Handlers) RemoveVideoFromPlaylist(w http.ResponseWriter, r *http.Request) {
	h.modifyPlaylistVideo(w, r, h.store.RemoveVideoFromPlaylist, "Video removed from playlist successfully")
}

func (h *Handlers) modifyPlaylistVideo(w http.ResponseWriter, r *http.Request, op func(playlistID, ownerID, videoID uuid.UUID) (bool, error), message string) {
	playlistID, err := pathID(r, "playlistId")
	if err != nil {
		fail(w, err)
		return
	}
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

	owned, err := op(playlistID, user.ID, videoID)
	if err != nil {
		fail(w, err)
		return
	}
	if !owned {
		fail(w, apierr.NotFound("Playlist not found"))
		return
	}

	playlist, err := h.store.GetPlaylist(playlistID)
	if err != nil {
		fail(w, apierr.From(err, "Playlist not found"))
		return
	}

	respond(w, http.StatusOK, playlist, message)
}

// UpdatePlaylist renames an owned playlist.
func (h *Handlers) UpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID, err := pathID(r, "playlistId")
	if err != nil {
		fail(w, err)
		return
	}

	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	var req playlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, apierr.Validation("Malformed request body"))
		return
	}
	if strings.TrimSpace(req.Name) == "" && strings.TrimSpace(req.Description) == "" {
		fail(w, apierr.Validation("At least name or description is required"))
		return
	}

	playlist, err := h.store.UpdatePlaylist(playlistID, user.ID, req.Name, req.Description)
	if err != nil {
		fail(w, apierr.From(err, "Playlist not found"))
		return
	}

	respond(w, http.StatusOK, playlist, "Playlist updated successfully")
}

// DeletePlaylist removes an owned playlist.
func (h *Handlers) DeletePlaylist(w http.ResponseWriter, r *http.Request) {
	playlistID, err := pathID(r, "playlistId")
	if err != nil {
		fail(w, err)
		return
	}

	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	playlist, err := h.store.DeletePlaylist(playlistID, user.ID)
	if err != nil {
		fail(w, apierr.From(err, "Playlist not found"))
		return
	}

	respond(w, http.StatusOK, playlist, "Playlist removed successfully")
}
