package db

import (
	"database/sql"
	"errors"
	"log"

	"github.com/google/uuid"
	"vidtube/internal/models"
)

// ToggleReaction flips the presence of a like for (user, kind, target).
// The unique constraint on (user_id, target_kind, target_id) is the
// source of truth: the insert either claims the row or conflicts, so two
// concurrent identical toggles can never both create one.
func (s *Store) ToggleReaction(userID uuid.UUID, kind models.TargetKind, targetID uuid.UUID) (models.ReactionState, *models.Reaction, error) {
	const insert = `
		INSERT INTO reactions (user_id, target_kind, target_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, target_kind, target_id) DO NOTHING
		RETURNING id, user_id, target_kind, target_id, created_at
	`
	reaction := &models.Reaction{}
	err := s.db.Get(reaction, insert, userID, kind, targetID)
	if err == nil {
		return models.StateLiked, reaction, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		log.Printf("Error inserting reaction for user %s: %v", userID, err)
		return "", nil, err
	}

	// The row already existed, so this toggle removes it.
	const del = `
		DELETE FROM reactions
		WHERE user_id = $1 AND target_kind = $2 AND target_id = $3
		RETURNING id, user_id, target_kind, target_id, created_at
	`
	err = s.db.Get(reaction, del, userID, kind, targetID)
	if errors.Is(err, sql.ErrNoRows) {
		// A concurrent toggle removed it first; the net state is the same.
		return models.StateUnliked, nil, nil
	}
	if err != nil {
		log.Printf("Error deleting reaction for user %s: %v", userID, err)
		return "", nil, err
	}
	return models.StateUnliked, reaction, nil
}

// ListLikedVideos returns the videos a user has liked, newest like first.
func (s *Store) ListLikedVideos(userID uuid.UUID) ([]models.Video, error) {
	const query = `
		SELECT v.id, v.owner_id, v.title, v.description, v.thumbnail_url, v.video_url,
		       v.duration_seconds, v.views, v.is_published, v.created_at, v.updated_at
		FROM reactions r
		JOIN videos v ON v.id = r.target_id
		WHERE r.user_id = $1 AND r.target_kind = $2
		ORDER BY r.created_at DESC
	`
	var videos []models.Video
	if err := s.db.Select(&videos, query, userID, models.TargetVideo); err != nil {
		log.Printf("Error listing liked videos for user %s: %v", userID, err)
		return nil, err
	}
	return videos, nil
}

// DeleteReactionsForTarget removes every reaction pointing at the given
// target. Used by the cleanup worker after an entity is deleted.
func (s *Store) DeleteReactionsForTarget(kind models.TargetKind, targetID uuid.UUID) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM reactions WHERE target_kind = $1 AND target_id = $2`, kind, targetID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// DeleteReactionsForVideoComments removes reactions on comments that
// belong to the given video.
func (s *Store) DeleteReactionsForVideoComments(videoID uuid.UUID) (int64, error) {
	const query = `
		DELETE FROM reactions
		WHERE target_kind = $1
		  AND target_id IN (SELECT id FROM comments WHERE video_id = $2)
	`
	res, err := s.db.Exec(query, models.TargetComment, videoID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
