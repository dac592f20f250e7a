package db

import (
	"log"

	"github.com/google/uuid"
	"vidtube/internal/models"
)

func (s *Store) ListVideoComments(videoID uuid.UUID, page, limit int) ([]models.CommentWithAuthor, error) {
	const query = `
		SELECT c.id, c.content, c.created_at, u.username, u.avatar_url
		FROM comments c
		JOIN users u ON u.id = c.owner_id
		WHERE c.video_id = $1
		ORDER BY c.created_at DESC
		OFFSET $2 LIMIT $3
	`
	var comments []models.CommentWithAuthor
	if err := s.db.Select(&comments, query, videoID, (page-1)*limit, limit); err != nil {
		log.Printf("Error listing comments for video %s: %v", videoID, err)
		return nil, err
	}
	return comments, nil
}

func (s *Store) CreateComment(videoID, ownerID uuid.UUID, content string) (*models.Comment, error) {
	const query = `
		INSERT INTO comments (video_id, owner_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, video_id, owner_id, content, created_at
	`
	comment := &models.Comment{}
	if err := s.db.Get(comment, query, videoID, ownerID, content); err != nil {
		log.Printf("Error creating comment on video %s: %v", videoID, err)
		return nil, err
	}
	return comment, nil
}

func (s *Store) UpdateComment(id, ownerID uuid.UUID, content string) (*models.Comment, error) {
	const query = `
		UPDATE comments
		SET content = $3
		WHERE id = $1 AND owner_id = $2
		RETURNING id, video_id, owner_id, content, created_at
	`
	comment := &models.Comment{}
	err := s.db.Get(comment, query, id, ownerID, content)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *Store) DeleteComment(id, ownerID uuid.UUID) (*models.Comment, error) {
	const query = `
		DELETE FROM comments
		WHERE id = $1 AND owner_id = $2
		RETURNING id, video_id, owner_id, content, created_at
	`
	comment := &models.Comment{}
	err := s.db.Get(comment, query, id, ownerID)
	if err != nil {
		return nil, err
	}
	return comment, nil
}

// DeleteCommentsForVideo removes all comments under a video. Used by the
// cleanup worker.
func (s *Store) DeleteCommentsForVideo(videoID uuid.UUID) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM comments WHERE video_id = $1`, videoID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// CommentExists reports whether a comment row exists.
func (s *Store) CommentExists(id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1)`, id)
	return exists, err
}
