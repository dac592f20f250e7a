package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription is a directed edge from a subscriber to a channel. At
// most one edge exists per (subscriber_id, channel_id).
type Subscription struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SubscriberID uuid.UUID `db:"subscriber_id" json:"subscriberId"`
	ChannelID    uuid.UUID `db:"channel_id" json:"channelId"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// SubscriptionState is the outcome of a subscription toggle.
type SubscriptionState string

const (
	StateSubscribed   SubscriptionState = "subscribed"
	StateUnsubscribed SubscriptionState = "unsubscribed"
)

// Subscriber is a subscription edge joined with the subscriber's identity.
type Subscriber struct {
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	Username  string    `db:"username" json:"username"`
	AvatarURL *string   `db:"avatar_url" json:"avatarUrl"`
	JoinedAt  time.Time `db:"joined_at" json:"joinedAt"`
}

// SubscribedChannel is a subscription edge joined with the channel's identity.
type SubscribedChannel struct {
	ChannelID uuid.UUID `db:"channel_id" json:"channelId"`
	Username  string    `db:"username" json:"username"`
	AvatarURL *string   `db:"avatar_url" json:"avatarUrl"`
	JoinedAt  time.Time `db:"joined_at" json:"joinedAt"`
}
