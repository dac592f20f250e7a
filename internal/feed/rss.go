package feed

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/eduncan911/podcast"
	"vidtube/internal/models"
)

func getBaseURL(r *http.Request) string {
	if baseURL := os.Getenv("BASE_URL"); baseURL != "" {
		return baseURL
	}

	scheme := r.URL.Scheme
	if scheme == "" {
		scheme = "https"
		if r.Header.Get("X-Forwarded-Proto") != "" {
			scheme = r.Header.Get("X-Forwarded-Proto")
		}
	}

	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// GenerateChannelRSS renders a channel's published uploads as an RSS
// feed, newest first, linking to the public watch pages.
func GenerateChannelRSS(channel *models.User, videos []models.Video, r *http.Request) (string, error) {
	baseURL := getBaseURL(r)

	now := time.Now()
	p := podcast.New(
		fmt.Sprintf("%s's Channel", channel.Username),
		fmt.Sprintf("%s/rss/%s", baseURL, channel.ID),
		fmt.Sprintf("Latest uploads from %s.", channel.Username),
		&channel.CreatedAt, &now,
	)
	if channel.AvatarURL != nil {
		p.AddImage(*channel.AvatarURL)
	}

	for i := range videos {
		video := videos[i]
		item := podcast.Item{
			Title:       video.Title,
			Description: video.Description,
			Link:        fmt.Sprintf("%s/watch/%s", baseURL, video.ID),
			PubDate:     &video.CreatedAt,
		}
		if _, err := p.AddItem(item); err != nil {
			return "", err
		}
	}

	return p.String(), nil
}
