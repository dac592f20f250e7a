package db

import (
	"log"

	"github.com/google/uuid"
	"vidtube/internal/models"
)

// ChannelStats aggregates a channel's counters on demand. A channel with
// no videos yields zeroes, not an error. The three reads are not taken
// under one snapshot; slightly stale aggregates are acceptable.
func (s *Store) ChannelStats(channelID uuid.UUID) (models.ChannelStats, error) {
	stats := models.ChannelStats{}

	const videoQuery = `
		SELECT COUNT(*) AS total_videos, COALESCE(SUM(views), 0) AS total_views
		FROM videos
		WHERE owner_id = $1
	`
	row := struct {
		TotalVideos int64 `db:"total_videos"`
		TotalViews  int64 `db:"total_views"`
	}{}
	if err := s.db.Get(&row, videoQuery, channelID); err != nil {
		log.Printf("Error aggregating videos for channel %s: %v", channelID, err)
		return stats, err
	}
	stats.TotalVideos = row.TotalVideos
	stats.TotalViews = row.TotalViews

	const likesQuery = `
		SELECT COUNT(*)
		FROM reactions r
		JOIN videos v ON v.id = r.target_id
		WHERE r.target_kind = $1 AND v.owner_id = $2
	`
	if err := s.db.Get(&stats.TotalLikes, likesQuery, models.TargetVideo, channelID); err != nil {
		log.Printf("Error counting likes for channel %s: %v", channelID, err)
		return stats, err
	}

	subscribers, err := s.CountSubscribers(channelID)
	if err != nil {
		log.Printf("Error counting subscribers for channel %s: %v", channelID, err)
		return stats, err
	}
	stats.TotalSubscribers = subscribers

	return stats, nil
}
