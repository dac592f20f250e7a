package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"vidtube/internal/apierr"
	"vidtube/internal/models"
)

type tweetRequest struct {
	Content string `json:"content"`
}

// CreateTweet posts a new tweet for the caller.
func (h *Handlers) CreateTweet(w http.ResponseWriter, r *http.Request) {
	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, apierr.Validation("Malformed request body"))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		fail(w, apierr.Validation("Content required"))
		return
	}

	tweet, err := h.store.CreateTweet(user.ID, req.Content)
	if err != nil {
		fail(w, err)
		return
	}

	respond(w, http.StatusCreated, tweet, "Tweet created successfully")
}

// GetUserTweets lists a user's tweets with the author identity joined.
// Public read.
func (h *Handlers) GetUserTweets(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		fail(w, err)
		return
	}

	tweets, err := h.store.ListUserTweets(userID)
	if err != nil {
		fail(w, err)
		return
	}
	if tweets == nil {
		tweets = []models.TweetWithAuthor{}
	}

	respond(w, http.StatusOK, tweets, "User tweets fetched successfully")
}

// UpdateTweet edits the caller's own tweet.
func (h *Handlers) UpdateTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, err := pathID(r, "tweetId")
	if err != nil {
		fail(w, err)
		return
	}

	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	var req tweetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		fail(w, apierr.Validation("Malformed request body"))
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		fail(w, apierr.Validation("Content required"))
		return
	}

	tweet, err := h.store.UpdateTweet(tweetID, user.ID, req.Content)
	if err != nil {
		fail(w, apierr.From(err, "Tweet not found"))
		return
	}

	respond(w, http.StatusOK, tweet, "Tweet updated successfully")
}

// DeleteTweet removes the caller's own tweet.
func (h *Handlers) DeleteTweet(w http.ResponseWriter, r *http.Request) {
	tweetID, err := pathID(r, "tweetId")
	if err != nil {
		fail(w, err)
		return
	}

	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	tweet, err := h.store.DeleteTweet(tweetID, user.ID)
	if err != nil {
		fail(w, apierr.From(err, "Tweet not found"))
		return
	}

	respond(w, http.StatusOK, tweet, "Tweet deleted successfully")
}
