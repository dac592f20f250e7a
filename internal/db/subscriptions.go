package db

import (
	"database/sql"
	"errors"
	"log"

	"github.com/google/uuid"
	"vidtube/internal/models"
)

// ToggleSubscription flips the edge from subscriber to channel, with the
// same constraint-backed semantics as ToggleReaction.
func (s *Store) ToggleSubscription(subscriberID, channelID uuid.UUID) (models.SubscriptionState, *models.Subscription, error) {
	const insert = `
		INSERT INTO subscriptions (subscriber_id, channel_id)
		VALUES ($1, $2)
		ON CONFLICT (subscriber_id, channel_id) DO NOTHING
		RETURNING id, subscriber_id, channel_id, created_at
	`
	sub := &models.Subscription{}
	err := s.db.Get(sub, insert, subscriberID, channelID)
	if err == nil {
		return models.StateSubscribed, sub, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("Error subscribing user %s to channel %s: %v", subscriberID, channelID, err)
		return "", nil, err
	}

	const del = `
		DELETE FROM subscriptions
		WHERE subscriber_id = $1 AND channel_id = $2
		RETURNING id, subscriber_id, channel_id, created_at
	`
	err = s.db.Get(sub, del, subscriberID, channelID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StateUnsubscribed, nil, nil
	}
	if err != nil {
		log.Printf("Error unsubscribing user %s from channel %s: %v", subscriberID, channelID, err)
		return "", nil, err
	}
	return models.StateUnsubscribed, sub, nil
}

// ListSubscribers returns the identities subscribed to a channel, newest first.
func (s *Store) ListSubscribers(channelID uuid.UUID) ([]models.Subscriber, error) {
	const query = `
		SELECT u.id AS user_id, u.username, u.avatar_url, s.created_at AS joined_at
		FROM subscriptions s
		JOIN users u ON u.id = s.subscriber_id
		WHERE s.channel_id = $1
		ORDER BY s.created_at DESC
	`
	var subscribers []models.Subscriber
	if err := s.db.Select(&subscribers, query, channelID); err != nil {
		log.Printf("Error listing subscribers for channel %s: %v", channelID, err)
		return nil, err
	}
	return subscribers, nil
}

// ListSubscriptions returns the channels a user is subscribed to, newest first.
func (s *Store) ListSubscriptions(subscriberID uuid.UUID) ([]models.SubscribedChannel, error) {
	const query = `
		SELECT u.id AS channel_id, u.username, u.avatar_url, s.created_at AS joined_at
		FROM subscriptions s
		JOIN users u ON u.id = s.channel_id
		WHERE s.subscriber_id = $1
		ORDER BY s.created_at DESC
	`
	var channels []models.SubscribedChannel
	if err := s.db.Select(&channels, query, subscriberID); err != nil {
		log.Printf("Error listing subscriptions for user %s: %v", subscriberID, err)
		return nil, err
	}
	return channels, nil
}

// CountSubscribers returns the number of edges pointing at a channel.
func (s *Store) CountSubscribers(channelID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.Get(&count, `SELECT COUNT(*) FROM subscriptions WHERE channel_id = $1`, channelID)
	return count, err
}
