package db

import (
	"log"

	"github.com/google/uuid"
	"vidtube/internal/models"
)

func (s *Store) CreateTweet(ownerID uuid.UUID, content string) (*models.Tweet, error) {
	const query = `
		INSERT INTO tweets (owner_id, content)
		VALUES ($1, $2)
		RETURNING id, owner_id, content, created_at
	`
	tweet := &models.Tweet{}
	if err := s.db.Get(tweet, query, ownerID, content); err != nil {
		log.Printf("Error creating tweet for user %s: %v", ownerID, err)
		return nil, err
	}
	return tweet, nil
}

func (s *Store) ListUserTweets(ownerID uuid.UUID) ([]models.TweetWithAuthor, error) {
	const query = `
		SELECT t.id, t.content, t.created_at, u.username, u.avatar_url
		FROM tweets t
		JOIN users u ON u.id = t.owner_id
		WHERE t.owner_id = $1
		ORDER BY t.created_at DESC
	`
	var tweets []models.TweetWithAuthor
	if err := s.db.Select(&tweets, query, ownerID); err != nil {
		log.Printf("Error listing tweets for user %s: %v", ownerID, err)
		return nil, err
	}
	return tweets, nil
}

func (s *Store) UpdateTweet(id, ownerID uuid.UUID, content string) (*models.Tweet, error) {
	const query = `
		UPDATE tweets
		SET content = $3
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, content, created_at
	`
	tweet := &models.Tweet{}
	err := s.db.Get(tweet, query, id, ownerID, content)
	if err != nil {
		return nil, err
	}
	return tweet, nil
}

func (s *Store) DeleteTweet(id, ownerID uuid.UUID) (*models.Tweet, error) {
	const query = `
		DELETE FROM tweets
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, content, created_at
	`
	tweet := &models.Tweet{}
	err := s.db.Get(tweet, query, id, ownerID)
	if err != nil {
		return nil, err
	}
	return tweet, nil
}

// TweetExists reports whether a tweet row exists.
func (s *Store) TweetExists(id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM tweets WHERE id = $1)`, id)
	return exists, err
}
