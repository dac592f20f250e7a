package db

import (
	"database/sql"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"vidtube/internal/models"
)

// DiscoveryFeedSize is the sample size served by the discovery feed.
const DiscoveryFeedSize = 20

// SearchVideos returns published videos whose title or description
// contains the term, newest first, paginated.
func (s *Store) SearchVideos(term string, page, limit int) ([]models.VideoSummary, error) {
	const query = `
		SELECT id, title, description, thumbnail_url, duration_seconds, views
		FROM videos
		WHERE is_published = TRUE
		  AND (title ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`
	var videos []models.VideoSummary
	if err := s.db.Select(&videos, query, term, (page-1)*limit, limit); err != nil {
		log.Printf("Error searching videos for %q: %v", term, err)
		return nil, err
	}
	return videos, nil
}

// DiscoverVideos draws a uniform random sample of published videos whose
// id is not in the exclusion set. The caller accumulates the set
// client-side; the server keeps no per-session cursor.
func (s *Store) DiscoverVideos(exclude []uuid.UUID) ([]models.VideoSummary, error) {
	excluded := make([]string, len(exclude))
	for i, id := range exclude {
		excluded[i] = id.String()
	}

	const query = `
		SELECT id, title, description, thumbnail_url, duration_seconds, views
		FROM videos
		WHERE is_published = TRUE
		  AND id <> ALL($1::uuid[])
		ORDER BY random()
		LIMIT $2
	`
	var videos []models.VideoSummary
	if err := s.db.Select(&videos, query, pq.Array(excluded), DiscoveryFeedSize); err != nil {
		log.Printf("Error sampling discovery feed: %v", err)
		return nil, err
	}
	return videos, nil
}

// ListChannelVideos returns a channel's published videos, newest first,
// paginated like search.
func (s *Store) ListChannelVideos(channelID uuid.UUID, page, limit int) ([]models.Video, error) {
	const query = `
		SELECT id, owner_id, title, description, thumbnail_url, video_url,
		       duration_seconds, views, is_published, created_at, updated_at
		FROM videos
		WHERE owner_id = $1 AND is_published = TRUE
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3
	`
	var videos []models.Video
	if err := s.db.Select(&videos, query, channelID, (page-1)*limit, limit); err != nil {
		log.Printf("Error listing videos for channel %s: %v", channelID, err)
		return nil, err
	}
	return videos, nil
}

func (s *Store) GetVideo(id uuid.UUID) (*models.Video, error) {
	video := &models.Video{}
	err := s.db.Get(video, `SELECT * FROM videos WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return video, nil
}

func (s *Store) CreateVideo(ownerID uuid.UUID, title, description, videoURL, thumbnailURL string, durationSeconds int) (*models.Video, error) {
	const query = `
		INSERT INTO videos (owner_id, title, description, video_url, thumbnail_url, duration_seconds)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, owner_id, title, description, thumbnail_url, video_url,
		          duration_seconds, views, is_published, created_at, updated_at
	`
	video := &models.Video{}
	err := s.db.Get(video, query, ownerID, title, description, videoURL, thumbnailURL, durationSeconds)
	if err != nil {
		log.Printf("Error creating video for owner %s: %v", ownerID, err)
		return nil, err
	}
	return video, nil
}

// UpdateVideo changes title, description and thumbnail of a video owned
// by ownerID. Returns sql.ErrNoRows when no owned video matches.
func (s *Store) UpdateVideo(id, ownerID uuid.UUID, title, description, thumbnailURL string) (*models.Video, error) {
	const query = `
		UPDATE videos
		SET title = $3, description = $4, thumbnail_url = $5, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, description, thumbnail_url, video_url,
		          duration_seconds, views, is_published, created_at, updated_at
	`
	video := &models.Video{}
	err := s.db.Get(video, query, id, ownerID, title, description, thumbnailURL)
	if err != nil {
		return nil, err
	}
	return video, nil
}

// DeleteVideo removes an owned video row and returns it so the caller
// can enqueue cleanup of dependents.
func (s *Store) DeleteVideo(id, ownerID uuid.UUID) (*models.Video, error) {
	const query = `
		DELETE FROM videos
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, title, description, thumbnail_url, video_url,
		          duration_seconds, views, is_published, created_at, updated_at
	`
	video := &models.Video{}
	err := s.db.Get(video, query, id, ownerID)
	if err != nil {
		return nil, err
	}
	return video, nil
}

// TogglePublish flips is_published on an owned video and returns the new
// value.
func (s *Store) TogglePublish(id, ownerID uuid.UUID) (bool, error) {
	const query = `
		UPDATE videos
		SET is_published = NOT is_published, updated_at = NOW()
		WHERE id = $1 AND owner_id = $2
		RETURNING is_published
	`
	var published bool
	err := s.db.Get(&published, query, id, ownerID)
	return published, err
}

// VideoExists reports whether a video row exists.
func (s *Store) VideoExists(id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM videos WHERE id = $1)`, id)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}
	return exists, nil
}
