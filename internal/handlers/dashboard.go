package handlers

import (
	"net/http"

	"vidtube/internal/apierr"
	"vidtube/internal/models"
)

// GetChannelStats returns the derived aggregate for a channel. Public:
// stats are profile data.
func (h *Handlers) GetChannelStats(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r, "channelId")
	if err != nil {
		fail(w, err)
		return
	}

	exists, err := h.store.UserExists(channelID)
	if err != nil {
		fail(w, err)
		return
	}
	if !exists {
		fail(w, apierr.NotFound("Channel not found"))
		return
	}

	stats, err := h.store.ChannelStats(channelID)
	if err != nil {
		fail(w, err)
		return
	}

	respond(w, http.StatusOK, stats, "Channel stats fetched successfully")
}

// GetChannelVideos lists a channel's published videos, newest first,
// paginated. Public.
func (h *Handlers) GetChannelVideos(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r, "channelId")
	if err != nil {
		fail(w, err)
		return
	}

	page, limit := pagination(r)
	videos, err := h.store.ListChannelVideos(channelID, page, limit)
	if err != nil {
		fail(w, err)
		return
	}
	if videos == nil {
		videos = []models.Video{}
	}

	respond(w, http.StatusOK, videos, "Channel videos fetched successfully")
}
