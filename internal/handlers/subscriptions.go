package handlers

import (
	"net/http"

	"vidtube/internal/apierr"
	"vidtube/internal/models"
)

type toggleSubscriptionResponse struct {
	State        models.SubscriptionState `json:"state"`
	Subscription *models.Subscription     `json:"subscription"`
}

// ToggleSubscription flips the caller's subscription to a channel.
func (h *Handlers) ToggleSubscription(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r, "channelId")
	if err != nil {
		fail(w, err)
		return
	}

	user, err := caller(r)
	if err != nil {
		fail(w, err)
		return
	}

	if user.ID == channelID {
		fail(w, apierr.Validation("Cannot subscribe to your own channel"))
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

	state, sub, err := h.store.ToggleSubscription(user.ID, channelID)
	if err != nil {
		fail(w, err)
		return
	}

	message := "Channel subscribed successfully"
	if state == models.StateUnsubscribed {
		message = "Channel unsubscribed successfully"
	}
	respond(w, http.StatusOK, toggleSubscriptionResponse{State: state, Subscription: sub}, message)
}

// GetChannelSubscribers lists the identities subscribed to a channel.
// Public read.
func (h *Handlers) GetChannelSubscribers(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r, "channelId")
	if err != nil {
		fail(w, err)
		return
	}

	subscribers, err := h.store.ListSubscribers(channelID)
	if err != nil {
		fail(w, err)
		return
	}
	if subscribers == nil {
		subscribers = []models.Subscriber{}
	}

	respond(w, http.StatusOK, subscribers, "Subscriber list found successfully")
}

// GetSubscribedChannels lists the channels a user follows. Public read.
func (h *Handlers) GetSubscribedChannels(w http.ResponseWriter, r *http.Request) {
	subscriberID, err := pathID(r, "subscriberId")
	if err != nil {
		fail(w, err)
		return
	}

	channels, err := h.store.ListSubscriptions(subscriberID)
	if err != nil {
		fail(w, err)
		return
	}
	if channels == nil {
		channels = []models.SubscribedChannel{}
	}

	respond(w, http.StatusOK, channels, "Subscribed channel list found successfully")
}

// GetSubscriberCount returns the number of subscribers of a channel.
// Public read.
func (h *Handlers) GetSubscriberCount(w http.ResponseWriter, r *http.Request) {
	channelID, err := pathID(r, "channelId")
	if err != nil {
		fail(w, err)
		return
	}

	count, err := h.store.CountSubscribers(channelID)
	if err != nil {
		fail(w, err)
		return
	}

	respond(w, http.StatusOK, map[string]int64{"subscribers": count}, "Subscriber count")
}
