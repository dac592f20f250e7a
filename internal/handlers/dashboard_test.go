package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"vidtube/internal/handlers"
	"vidtube/internal/test"
)

func TestGetChannelStats(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	channelID := uuid.New()

	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users`).
		WithArgs(channelID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(`COALESCE\(SUM\(views\), 0\)`).
		WithArgs(channelID).
		WillReturnRows(sqlmock.NewRows([]string{"total_videos", "total_views"}).AddRow(2, 15))
	mock.ExpectQuery(`FROM reactions r\s+JOIN videos v`).
		WithArgs("video", channelID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM subscriptions`).
		WithArgs(channelID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	// No caller identity: stats are public profile data.
	rr := httptest.NewRecorder()
	h.GetChannelStats(rr, authedRequest(http.MethodGet, "/api/v1/dashboard/stats/"+channelID.String(), nil, map[string]string{"channelId": channelID.String()}))

	assert.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	data := envelope["data"].(map[string]interface{})
	assert.EqualValues(t, 2, data["totalVideos"])
	assert.EqualValues(t, 15, data["totalViews"])
	assert.EqualValues(t, 2, data["totalLikes"])
	assert.EqualValues(t, 3, data["totalSubscribers"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetChannelStatsUnknownChannel(t *testing.T) {
	store, mock := test.NewMockStore(t)
	h := handlers.New(store, &test.MockTaskEnqueuer{})

	channelID := uuid.New()
	mock.ExpectQuery(`SELECT EXISTS \(SELECT 1 FROM users`).
		WithArgs(channelID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	rr := httptest.NewRecorder()
	h.GetChannelStats(rr, authedRequest(http.MethodGet, "/api/v1/dashboard/stats/"+channelID.String(), nil, map[string]string{"channelId": channelID.String()}))

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
