package db

import (
	"github.com/google/uuid"
	"vidtube/internal/models"
)

// GetUser loads an identity row. Users are created by the external auth
// service; this store only reads them.
func (s *Store) GetUser(id uuid.UUID) (*models.User, error) {
	user := &models.User{}
	err := s.db.Get(user, `SELECT id, username, avatar_url, created_at FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UserExists reports whether an identity row exists. A channel id is a
// user id, so this doubles as the channel existence check.
func (s *Store) UserExists(id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.Get(&exists, `SELECT EXISTS (SELECT 1 FROM users WHERE id = $1)`, id)
	return exists, err
}
