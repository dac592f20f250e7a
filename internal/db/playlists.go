package db

import (
	"log"

	"github.com/google/uuid"
	"vidtube/internal/models"
)

func (s *Store) CreatePlaylist(ownerID uuid.UUID, name, description string, seedVideoID *uuid.UUID) (*models.Playlist, error) {
	const query = `
		INSERT INTO playlists (owner_id, name, description)
		VALUES ($1, $2, $3)
		RETURNING id, owner_id, name, description, created_at
	`
	playlist := &models.Playlist{}
	if err := s.db.Get(playlist, query, ownerID, name, description); err != nil {
		log.Printf("Error creating playlist for user %s: %v", ownerID, err)
		return nil, err
	}

	if seedVideoID != nil {
		if _, err := s.AddVideoToPlaylist(playlist.ID, ownerID, *seedVideoID); err != nil {
			return nil, err
		}
	}
	return playlist, nil
}

func (s *Store) ListPlaylistsByOwner(ownerID uuid.UUID) ([]models.Playlist, error) {
	const query = `
		SELECT id, owner_id, name, description, created_at
		FROM playlists
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`
	var playlists []models.Playlist
	if err := s.db.Select(&playlists, query, ownerID); err != nil {
		log.Printf("Error listing playlists for user %s: %v", ownerID, err)
		return nil, err
	}
	return playlists, nil
}

// GetPlaylist returns a playlist with its resolvable videos embedded.
// Entries whose video no longer exists simply drop out of the join; the
// prune task removes them from the table eventually.
func (s *Store) GetPlaylist(id uuid.UUID) (*models.EnrichedPlaylist, error) {
	playlist := &models.EnrichedPlaylist{}
	const head = `SELECT id, owner_id, name, description, created_at FROM playlists WHERE id = $1`
	if err := s.db.Get(&playlist.Playlist, head, id); err != nil {
		return nil, err
	}

	const videosQuery = `
		SELECT v.id, v.owner_id, v.title, v.description, v.thumbnail_url, v.video_url,
		       v.duration_seconds, v.views, v.is_published, v.created_at, v.updated_at
		FROM playlist_videos pv
		JOIN videos v ON v.id = pv.video_id
		WHERE pv.playlist_id = $1
		ORDER BY pv.added_at
	`
	if err := s.db.Select(&playlist.Videos, videosQuery, id); err != nil {
		log.Printf("Error loading videos for playlist %s: %v", id, err)
		return nil, err
	}
	return playlist, nil
}

// AddVideoToPlaylist attaches a video with set semantics: re-adding an
// existing entry is a no-op. Returns false when the playlist is not
// owned by ownerID.
func (s *Store) AddVideoToPlaylist(playlistID, ownerID, videoID uuid.UUID) (bool, error) {
	const query = `
		INSERT INTO playlist_videos (playlist_id, video_id)
		SELECT p.id, $3 FROM playlists p WHERE p.id = $1 AND p.owner_id = $2
		ON CONFLICT (playlist_id, video_id) DO NOTHING
	`
	if _, err := s.db.Exec(query, playlistID, ownerID, videoID); err != nil {
		log.Printf("Error adding video %s to playlist %s: %v", videoID, playlistID, err)
		return false, err
	}
	return s.playlistOwnedBy(playlistID, ownerID)
}

// RemoveVideoFromPlaylist detaches a video. Returns false when the
// playlist is not owned by ownerID.
func (s *Store) RemoveVideoFromPlaylist(playlistID, ownerID, videoID uuid.UUID) (bool, error) {
	const query = `
		DELETE FROM playlist_videos pv
		USING playlists p
		WHERE pv.playlist_id = p.id AND p.id = $1 AND p.owner_id = $2 AND pv.video_id = $3
	`
	if _, err := s.db.Exec(query, playlistID, ownerID, videoID); err != nil {
		log.Printf("Error removing video %s from playlist %s: %v", videoID, playlistID, err)
		return false, err
	}
	return s.playlistOwnedBy(playlistID, ownerID)
}

func (s *Store) playlistOwnedBy(playlistID, ownerID uuid.UUID) (bool, error) {
	var owned bool
	err := s.db.Get(&owned, `SELECT EXISTS (SELECT 1 FROM playlists WHERE id = $1 AND owner_id = $2)`, playlistID, ownerID)
	return owned, err
}

func (s *Store) UpdatePlaylist(id, ownerID uuid.UUID, name, description string) (*models.Playlist, error) {
	const query = `
		UPDATE playlists
		SET name = $3, description = $4
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, name, description, created_at
	`
	playlist := &models.Playlist{}
	err := s.db.Get(playlist, query, id, ownerID, name, description)
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

func (s *Store) DeletePlaylist(id, ownerID uuid.UUID) (*models.Playlist, error) {
	const query = `
		DELETE FROM playlists
		WHERE id = $1 AND owner_id = $2
		RETURNING id, owner_id, name, description, created_at
	`
	playlist := &models.Playlist{}
	err := s.db.Get(playlist, query, id, ownerID)
	if err != nil {
		return nil, err
	}
	return playlist, nil
}

// RemoveVideoFromAllPlaylists drops every playlist entry for a video.
// Used by the cleanup worker after a video is deleted.
func (s *Store) RemoveVideoFromAllPlaylists(videoID uuid.UUID) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM playlist_videos WHERE video_id = $1`, videoID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// PruneDanglingPlaylistEntries removes entries whose video no longer
// exists. Run periodically by the scheduler.
func (s *Store) PruneDanglingPlaylistEntries() (int64, error) {
	const query = `
		DELETE FROM playlist_videos pv
		WHERE NOT EXISTS (SELECT 1 FROM videos v WHERE v.id = pv.video_id)
	`
	res, err := s.db.Exec(query)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
