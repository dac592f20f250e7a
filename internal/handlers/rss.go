package handlers

import (
	"log"
	"net/http"

	"vidtube/internal/apierr"
	"vidtube/internal/feed"
)

// channelFeedPageSize bounds the number of uploads in the RSS rendition.
const channelFeedPageSize = 50

// GetChannelRSS serves a channel's published uploads as RSS. Public.
func (h *Handlers) GetChannelRSS(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r, "channelId")
	if err != nil {
		fail(w, err)
		return
	}

	channel, err := h.store.GetUser(channelID)
	if err != nil {
		fail(w, apierr.From(err, "Channel not found"))
		return
	}

	videos, err := h.store.ListChannelVideos(channelID, 1, channelFeedPageSize)
	if err != nil {
		fail(w, err)
		return
	}

	rss, err := feed.GenerateChannelRSS(channel, videos, r)
	if err != nil {
		log.Printf("Error generating RSS for channel %s: %v", channelID, err)
		fail(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml")
	w.Write([]byte(rss))
}
